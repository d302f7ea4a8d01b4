// ABOUTME: Graphviz rendering of clients and the work attached to them
// ABOUTME: Generates DOT with client nodes linked to their projects and invoices
package viz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/harperreed/billfold/models"
	"github.com/harperreed/billfold/store"
)

type GraphGenerator struct {
	snap store.Snapshot
}

func NewGraphGenerator(snap store.Snapshot) *GraphGenerator {
	return &GraphGenerator{snap: snap}
}

// GenerateClientGraph renders every client with edges to its projects and
// invoices. Projects and invoices whose client is gone are drawn unattached.
func (g *GraphGenerator) GenerateClientGraph(ctx context.Context) (string, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create graphviz: %w", err)
	}
	defer func() { _ = gv.Close() }()

	graph, err := gv.Graph()
	if err != nil {
		return "", fmt.Errorf("failed to create graph: %w", err)
	}
	defer func() { _ = graph.Close() }()

	graph.SetLabel("Clients")
	graph.SetRankDir(cgraph.LRRank)

	clientNodes := make(map[models.ID]*cgraph.Node)
	for _, c := range g.snap.Clients {
		node, err := graph.CreateNodeByName("client_" + string(c.ID))
		if err != nil {
			return "", fmt.Errorf("failed to create client node: %w", err)
		}
		label := c.Name
		if c.Email != "" {
			label += "\n" + c.Email
		}
		node.SetLabel(label)
		node.SetShape("box")
		node.SetStyle("filled")
		node.SetFillColor("lightblue")
		clientNodes[c.ID] = node
	}

	for _, p := range g.snap.Projects {
		node, err := graph.CreateNodeByName("project_" + string(p.ID))
		if err != nil {
			return "", fmt.Errorf("failed to create project node: %w", err)
		}
		node.SetLabel(fmt.Sprintf("%s\n%s", p.Title, models.FormatCurrency(p.Amount)))
		node.SetShape("ellipse")
		node.SetStyle("filled")
		node.SetFillColor(projectColor(p.Status))

		if clientNode, ok := clientNodes[p.ClientID]; ok {
			edge, err := graph.CreateEdgeByName("project_"+string(p.ID), clientNode, node)
			if err != nil {
				return "", fmt.Errorf("failed to create edge: %w", err)
			}
			edge.SetLabel(string(p.Status))
		}
	}

	for _, inv := range g.snap.Invoices {
		node, err := graph.CreateNodeByName("invoice_" + string(inv.ID))
		if err != nil {
			return "", fmt.Errorf("failed to create invoice node: %w", err)
		}
		node.SetLabel(fmt.Sprintf("Invoice %s\n%s", inv.ID, models.FormatMoney(inv.Total)))
		node.SetShape("note")
		node.SetStyle("filled")
		node.SetFillColor(invoiceColor(inv.Status))

		if clientNode, ok := clientNodes[inv.ClientID]; ok {
			edge, err := graph.CreateEdgeByName("invoice_"+string(inv.ID), clientNode, node)
			if err != nil {
				return "", fmt.Errorf("failed to create edge: %w", err)
			}
			edge.SetLabel(string(inv.Status))
			edge.SetStyle("dashed")
		}
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.XDOT, &buf); err != nil {
		return "", fmt.Errorf("failed to render graph: %w", err)
	}

	return buf.String(), nil
}

func projectColor(s models.ProjectStatus) string {
	switch s {
	case models.ProjectCompleted:
		return "lightgreen"
	case models.ProjectOnHold:
		return "lightgrey"
	default:
		return "lightyellow"
	}
}

func invoiceColor(s models.InvoiceStatus) string {
	switch s {
	case models.InvoicePaid:
		return "lightgreen"
	case models.InvoiceOverdue:
		return "salmon"
	case models.InvoiceSent:
		return "lightyellow"
	default:
		return "white"
	}
}
