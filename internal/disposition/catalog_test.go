package disposition

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

var sample = Catalog{
	{Level1: "Contacted", Level2: "Interested", Level3: "Callback"},
	{Level1: "Contacted", Level2: "Interested", Level3: "Sale"},
	{Level1: "Contacted", Level2: "Not interested", Level3: ""},
	{Level1: "No contact", Level2: "", Level3: ""},
	{Level1: "No contact", Level2: "Voicemail", Level3: ""},
	{Level1: " ", Level2: "x", Level3: ""},
}

func TestLevel1Options(t *testing.T) {
	got := sample.Level1Options()
	want := []string{"Contacted", "No contact"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestLevel2Options_DistinctNonBlankFirstOccurrence(t *testing.T) {
	got := sample.Level2Options("Contacted")
	want := []string{"Interested", "Not interested"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	got = sample.Level2Options("No contact")
	if !reflect.DeepEqual(got, []string{"Voicemail"}) {
		t.Fatalf("expected [Voicemail], got %v", got)
	}
}

func TestLevel3Options(t *testing.T) {
	got := sample.Level3Options("Contacted", "Interested")
	want := []string{"Callback", "Sale"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if got := sample.Level3Options("Contacted", "Not interested"); len(got) != 0 {
		t.Fatalf("expected no options, got %v", got)
	}
}

func TestSelection_SetClearsDeeperSlots(t *testing.T) {
	var s Selection
	s.Set(0, "Contacted")
	s.Set(1, "Interested")
	s.Set(2, "Sale")

	s.Set(0, "No contact")
	if s[1] != "" || s[2] != "" {
		t.Fatalf("expected deeper slots cleared, got %v", s)
	}

	s.Set(1, "Voicemail")
	s.Set(2, "x")
	s.Set(1, "Other")
	if s[2] != "" {
		t.Fatalf("expected level 3 cleared on level 2 change, got %v", s)
	}
}

func TestSelection_Complete(t *testing.T) {
	var s Selection
	if s.Complete() {
		t.Fatalf("empty selection must not be complete")
	}
	s.Set(0, "Contacted")
	if !s.Complete() {
		t.Fatalf("level-1-only selection must be complete")
	}
}

func TestLoadForCampaign_FailureKeepsPrevious(t *testing.T) {
	repo := NewMemoryRepo()
	repo.Rows["Sales->"] = []Record{{Level1: "Contacted"}}

	s := NewService(repo, nil)
	cat, ok := s.LoadForCampaign(context.Background(), "Sales->")
	if !ok || len(cat) != 1 {
		t.Fatalf("expected loaded catalog, got ok=%v cat=%v", ok, cat)
	}

	repo.Err = errors.New("down")
	if _, ok := s.LoadForCampaign(context.Background(), "Sales->"); ok {
		t.Fatalf("expected ok=false on failure")
	}
}
