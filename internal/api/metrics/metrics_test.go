package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveTransition(t *testing.T) {
	before := testutil.ToFloat64(CredentialRejectionsTotal.WithLabelValues("expired"))

	ObserveTransition(true, "login")
	if got := testutil.ToFloat64(SessionAuthenticated); got != 1 {
		t.Fatalf("expected authenticated gauge 1, got %v", got)
	}

	ObserveTransition(false, "expired")
	if got := testutil.ToFloat64(SessionAuthenticated); got != 0 {
		t.Fatalf("expected authenticated gauge 0, got %v", got)
	}
	if got := testutil.ToFloat64(CredentialRejectionsTotal.WithLabelValues("expired")); got != before+1 {
		t.Fatalf("expected one more expired rejection, got %v", got-before)
	}

	logoutBefore := testutil.ToFloat64(CredentialRejectionsTotal.WithLabelValues("logout"))
	ObserveTransition(false, "logout")
	if got := testutil.ToFloat64(CredentialRejectionsTotal.WithLabelValues("logout")); got != logoutBefore {
		t.Fatalf("logout is not a rejection")
	}
}

func TestObserveUnknownResource_SingleSeries(t *testing.T) {
	before := testutil.ToFloat64(UnknownResourceTotal)

	for i := 0; i < 500; i++ {
		ObserveUnknownResource()
	}

	if got := testutil.ToFloat64(UnknownResourceTotal); got != before+500 {
		t.Fatalf("expected 500 more lookups, got %v", got-before)
	}
	if got := testutil.CollectAndCount(UnknownResourceTotal); got != 1 {
		t.Fatalf("expected a single series, got %d", got)
	}
}
