package event_test

import (
	"testing"

	"github.com/sabouaram/riemann-go-client/event"
)

func TestBuilderProducesExpectedEvent(t *testing.T) {
	v := "prod"
	e := event.New().
		Service("rustmann_test").
		State("ok").
		Host("box01").
		Description("all good").
		Tag("a").
		Tag("b").
		TTL(60).
		MetricF(123.4).
		Attribute("env", &v).
		Build()

	if e.GetService() != "rustmann_test" {
		t.Fatalf("expected service rustmann_test, got %q", e.GetService())
	}
	if e.GetState() != "ok" {
		t.Fatalf("expected state ok, got %q", e.GetState())
	}
	if len(e.Tags) != 2 || e.Tags[0] != "a" || e.Tags[1] != "b" {
		t.Fatalf("expected tags [a b] in order, got %v", e.Tags)
	}
	if len(e.Attributes) != 1 || e.Attributes[0].GetKey() != "env" || e.Attributes[0].GetValue() != "prod" {
		t.Fatalf("unexpected attributes: %+v", e.Attributes)
	}
}

func TestBuilderIsImmutableAcrossBranches(t *testing.T) {
	base := event.New().Service("shared")
	left := base.Tag("left").Build()
	right := base.Tag("right").Build()

	if len(left.Tags) != 1 || left.Tags[0] != "left" {
		t.Fatalf("left branch polluted: %v", left.Tags)
	}
	if len(right.Tags) != 1 || right.Tags[0] != "right" {
		t.Fatalf("right branch polluted: %v", right.Tags)
	}
}

func TestBuiltEventNotMutatedByFurtherBuilderUse(t *testing.T) {
	b := event.New().Tag("one")
	first := b.Build()
	_ = b.Tag("two").Build()

	if len(first.Tags) != 1 || first.Tags[0] != "one" {
		t.Fatalf("expected first build to remain [one], got %v", first.Tags)
	}
}
