package report

import (
	"fmt"
	"io"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"
)

// Metric family names emitted by the prom format.
const (
	NodeMetric = "lvlath_bc_node_betweenness"
	EdgeMetric = "lvlath_bc_edge_betweenness"
)

// families converts t into gauge metric families: one sample per row plus
// a vertex-count gauge describing the graph.
func families(t Table) []*dto.MetricFamily {
	name, help := NodeMetric, "Shortest-path betweenness centrality per vertex."
	if t.Kind == KindEdges {
		name, help = EdgeMetric, "Shortest-path betweenness centrality per edge."
	}

	scores := &dto.MetricFamily{
		Name:   proto.String(name),
		Help:   proto.String(help),
		Type:   dto.MetricType_GAUGE.Enum(),
		Metric: make([]*dto.Metric, 0, len(t.Rows)),
	}
	for _, r := range t.Rows {
		var labels []*dto.LabelPair
		if t.Kind == KindEdges {
			labels = []*dto.LabelPair{
				{Name: proto.String("from"), Value: proto.String(r.From)},
				{Name: proto.String("to"), Value: proto.String(r.To)},
			}
		} else {
			labels = []*dto.LabelPair{{Name: proto.String("vertex"), Value: proto.String(r.ID)}}
		}
		labels = append(labels, &dto.LabelPair{Name: proto.String("topology"), Value: proto.String(t.Topology)})
		scores.Metric = append(scores.Metric, &dto.Metric{
			Label: labels,
			Gauge: &dto.Gauge{Value: proto.Float64(r.Score)},
		})
	}

	size := &dto.MetricFamily{
		Name: proto.String("lvlath_bc_graph_vertices"),
		Help: proto.String("Number of vertices in the scored graph."),
		Type: dto.MetricType_GAUGE.Enum(),
		Metric: []*dto.Metric{{
			Label: []*dto.LabelPair{{Name: proto.String("topology"), Value: proto.String(t.Topology)}},
			Gauge: &dto.Gauge{Value: proto.Float64(float64(t.Vertices))},
		}},
	}

	return []*dto.MetricFamily{scores, size}
}

func writeProm(w io.Writer, t Table) error {
	for _, mf := range families(t) {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("report: encoding prom %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
