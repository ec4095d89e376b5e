package core

import (
	"reflect"
	"testing"
	"time"
)

func TestStringRecordMUS_RoundTrip(t *testing.T) {
	record, err := NewStringRecord("A man a plan")
	if err != nil {
		t.Fatalf("NewStringRecord() unexpected error: %v", err)
	}
	record.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	record.Seq = 42

	bs := make([]byte, StringRecordMUS.Size(*record))
	n := StringRecordMUS.Marshal(*record, bs)
	if n != len(bs) {
		t.Fatalf("Marshal wrote %d bytes, Size reported %d", n, len(bs))
	}

	decoded, n, err := StringRecordMUS.Unmarshal(bs)
	if err != nil {
		t.Fatalf("Unmarshal() unexpected error: %v", err)
	}
	if n != len(bs) {
		t.Errorf("Unmarshal consumed %d bytes, want %d", n, len(bs))
	}

	if !decoded.CreatedAt.Equal(record.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", decoded.CreatedAt, record.CreatedAt)
	}
	decoded.CreatedAt = record.CreatedAt
	if !reflect.DeepEqual(decoded, *record) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", decoded, *record)
	}
}

func TestStringRecordMUS_Skip(t *testing.T) {
	record, err := NewStringRecord("skip me")
	if err != nil {
		t.Fatalf("NewStringRecord() unexpected error: %v", err)
	}
	record.Seq = 7

	bs := make([]byte, StringRecordMUS.Size(*record))
	StringRecordMUS.Marshal(*record, bs)

	n, err := StringRecordMUS.Skip(bs)
	if err != nil {
		t.Fatalf("Skip() unexpected error: %v", err)
	}
	if n != len(bs) {
		t.Errorf("Skip consumed %d bytes, want %d", n, len(bs))
	}
}
