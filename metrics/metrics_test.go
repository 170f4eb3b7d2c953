package metrics

import (
	"testing"

	"github.com/npillmayer/restyle/dom/reconcile"
	"github.com/npillmayer/restyle/dom/style"
	"github.com/npillmayer/restyle/dom/styledtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func TestCollectorCountsPasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.engine")
	defer teardown()
	//
	c := New(WithRegistry(prometheus.NewRegistry()))
	e := reconcile.New(reconcile.WithObserver(c), reconcile.WithReporter(&reconcile.Collector{}))
	old := styledtree.NewNode(nil, nil)
	old.Style = style.StyleObject(style.Map{"width": style.Num(1), "top": style.Num(2)})
	e.Create(old, nil)
	n := styledtree.NewNode(nil, nil)
	n.StaticStyle = style.DeclText("color:")
	e.Update(old, n, nil)
	//
	if v := counterValue(t, c.passes.WithLabelValues("mount")); v != 1 {
		t.Errorf("expected 1 mount pass, is %v", v)
	}
	if v := counterValue(t, c.passes.WithLabelValues("rerender")); v != 1 {
		t.Errorf("expected 1 rerender pass, is %v", v)
	}
	if v := counterValue(t, c.properties.WithLabelValues("mount")); v != 2 {
		t.Errorf("expected 2 properties patched on mount, is %v", v)
	}
	if v := counterValue(t, c.resets); v != 2 {
		t.Errorf("expected 2 resets, is %v", v)
	}
	if v := counterValue(t, c.diagnostics.WithLabelValues("malformed-static-style")); v != 1 {
		t.Errorf("expected 1 diagnostic, is %v", v)
	}
}

func TestCollectorRegisters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.engine")
	defer teardown()
	//
	reg := prometheus.NewRegistry()
	c := New(WithRegistry(reg), WithNamespace("test"))
	c.Patched(reconcile.Serialize, style.Map{"color": style.Text("red")}, 0)
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "test_engine_passes_total" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected metric test_engine_passes_total to be registered")
	}
}
