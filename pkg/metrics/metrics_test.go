package metrics_test

import (
	"testing"

	"github.com/Yotrages/exquisite-wears/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestStoreOps_CountersByLabel(t *testing.T) {
	metrics.MustRegister()

	addBefore := testutil.ToFloat64(metrics.StoreOps.WithLabelValues("add"))
	clearBefore := testutil.ToFloat64(metrics.StoreOps.WithLabelValues("clear"))

	metrics.StoreOps.WithLabelValues("add").Inc()
	metrics.StoreOps.WithLabelValues("add").Inc()

	if got := testutil.ToFloat64(metrics.StoreOps.WithLabelValues("add")); got != addBefore+2 {
		t.Fatalf("StoreOps(add): got=%v want=%v", got, addBefore+2)
	}
	if got := testutil.ToFloat64(metrics.StoreOps.WithLabelValues("clear")); got != clearBefore {
		t.Fatalf("StoreOps(clear): got=%v want=%v", got, clearBefore)
	}
}

func TestRemoteRequests_ByOpAndOutcome(t *testing.T) {
	metrics.MustRegister()

	before := testutil.ToFloat64(metrics.RemoteRequests.WithLabelValues("fetch", "network"))
	metrics.RemoteRequests.WithLabelValues("fetch", "network").Inc()

	if got := testutil.ToFloat64(metrics.RemoteRequests.WithLabelValues("fetch", "network")); got != before+1 {
		t.Fatalf("RemoteRequests(fetch,network): got=%v want=%v", got, before+1)
	}
}

func TestCartLines_GaugeSet(t *testing.T) {
	metrics.MustRegister()

	cur := testutil.ToFloat64(metrics.CartLines)

	metrics.CartLines.Set(cur + 3)
	if got := testutil.ToFloat64(metrics.CartLines); got != cur+3 {
		t.Fatalf("CartLines after +3: got=%v want=%v", got, cur+3)
	}

	metrics.CartLines.Set(cur) // вернуть как было
	if got := testutil.ToFloat64(metrics.CartLines); got != cur {
		t.Fatalf("CartLines restore: got=%v want=%v", got, cur)
	}
}

func TestKafkaCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	const topic = "cart-events"
	beforeConsumed := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues(topic))
	beforeFailed := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues(topic))

	metrics.KafkaMessagesConsumed.WithLabelValues(topic).Inc()
	metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()

	if got := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues(topic)); got != beforeConsumed+1 {
		t.Fatalf("KafkaMessagesConsumed: got=%v want=%v", got, beforeConsumed+1)
	}
	if got := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues(topic)); got != beforeFailed+1 {
		t.Fatalf("KafkaMessagesFailed: got=%v want=%v", got, beforeFailed+1)
	}
}
