package mint

import (
	"strings"
	"testing"
	"time"
)

func TestDecodeGroupMap(t *testing.T) {
	// Column per group, ragged columns, empty cells.
	def := `Food,Transport,Home
Groceries,Gas & Fuel,Mortgage & Rent
Restaurants,Public Transportation,
Coffee Shops,,
`
	gm, err := DecodeGroupMap(strings.NewReader(def))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		category, want string
	}{
		{"Groceries", "Food"},
		{"Coffee Shops", "Food"},
		{"Gas & Fuel", "Transport"},
		{"Mortgage & Rent", "Home"},
		{"Pet Food", "Pet Food"}, // unmapped keeps its own name
	}
	for _, tt := range tests {
		if got := gm.Group(tt.category); got != tt.want {
			t.Errorf("Group(%q) = %q, want %q", tt.category, got, tt.want)
		}
	}
}

func TestDecodeGroupMapLastWins(t *testing.T) {
	def := `Food,Travel
Restaurants,Restaurants
`
	gm, err := DecodeGroupMap(strings.NewReader(def))
	if err != nil {
		t.Fatal(err)
	}
	if got := gm.Group("Restaurants"); got != "Travel" {
		t.Errorf("Group(Restaurants) = %q, want the later column Travel", got)
	}
}

func TestAssignGroupsIsIdempotent(t *testing.T) {
	l := NewLedger(
		debit(day(2023, time.March, 1), "coffee", 4.50, "Coffee Shops", "visa"),
		debit(day(2023, time.March, 2), "lunch", 12, "Restaurants", "visa"),
		debit(day(2023, time.March, 3), "vet", 80, "Veterinary", "visa"),
	)
	gm := GroupMap{"Coffee Shops": "Food", "Restaurants": "Food"}
	l.AssignGroups(gm)
	l.AssignGroups(gm)
	want := map[string]string{"coffee": "Food", "lunch": "Food", "vet": "Veterinary"}
	for _, got := range l.Transactions() {
		if got.SpendingGroup != want[got.Description] {
			t.Errorf("%s in group %q, want %q", got.Description, got.SpendingGroup, want[got.Description])
		}
	}
}

func TestDecodeExclusionList(t *testing.T) {
	in := `Spending Group,Hide Analysis
Investments,
Transfers,true
Rental Property,false
`
	list, err := DecodeExclusionList(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []Exclusion{
		// An empty cell hides the analysis; "false" opts back in.
		{Group: "Investments", HideAnalysis: true},
		{Group: "Transfers", HideAnalysis: true},
		{Group: "Rental Property"},
	}
	if len(list) != len(want) {
		t.Fatalf("decoded %d exclusions, want %d", len(list), len(want))
	}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("exclusion %d = %+v, want %+v", i, list[i], want[i])
		}
	}
}

func TestDecodeExclusionListBadBool(t *testing.T) {
	in := `Spending Group,Hide Analysis
Investments,maybe
`
	if _, err := DecodeExclusionList(strings.NewReader(in)); err == nil {
		t.Fatal("accepted a malformed boolean")
	}
}
