package repository

import (
	"testing"
	"time"

	"imoveis_xpto/internal/domain/entities"
)

func paymentSortKeyAt(millis int64) string {
	p := &entities.Payment{ID: "c1a7e7a0-8a52-4f5b-9f06-2f3d2a6b0c11", CreatedAtMillis: millis}
	return p.SK()
}

func TestNewPaymentDynamoRepository_StoresTableAndIndex(t *testing.T) {
	repo := NewPaymentDynamoRepository(nil, "rentals-staging", "gsi1-staging")

	if repo.tableName != "rentals-staging" {
		t.Fatalf("tableName = %q, want rentals-staging", repo.tableName)
	}
	if repo.gsi1Name != "gsi1-staging" {
		t.Fatalf("gsi1Name = %q, want gsi1-staging", repo.gsi1Name)
	}
}

func TestPaymentCreationRange(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)
	lower, upper := paymentCreationRange(from, to)

	if lower != "PAYMENT#"+timeToMillisString(from) {
		t.Fatalf("unexpected lower bound: %q", lower)
	}

	inside := paymentSortKeyAt(time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC).UnixMilli())
	if inside < lower || inside > upper {
		t.Fatalf("expected %q inside [%q, %q]", inside, lower, upper)
	}

	// both boundary instants are included
	atFrom := paymentSortKeyAt(from.UnixMilli())
	if atFrom < lower || atFrom > upper {
		t.Fatalf("expected payment created at from to be included, got %q", atFrom)
	}
	atTo := paymentSortKeyAt(to.UnixMilli())
	if atTo < lower || atTo > upper {
		t.Fatalf("expected payment created at to to be included, got %q", atTo)
	}

	// one millisecond either side falls out
	if before := paymentSortKeyAt(from.UnixMilli() - 1); before >= lower {
		t.Fatalf("expected %q below the lower bound %q", before, lower)
	}
	if after := paymentSortKeyAt(to.UnixMilli() + 1); after <= upper {
		t.Fatalf("expected %q above the upper bound %q", after, upper)
	}
}
