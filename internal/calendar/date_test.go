package calendar

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-02")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if !d.Equal(NewDate(2026, time.March, 2)) {
		t.Errorf("ParseDate() = %s, want 2026-03-02", d)
	}
	if d.Weekday() != time.Monday {
		t.Errorf("Weekday() = %v, want Monday", d.Weekday())
	}

	if _, err := ParseDate("02/03/2026"); err == nil {
		t.Error("ParseDate() accepted a non-ISO date")
	}
}

func TestDateJSON(t *testing.T) {
	type wrapper struct {
		Due Date `json:"due"`
	}

	out, err := json.Marshal(wrapper{Due: NewDate(2026, time.March, 2)})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(out) != `{"due":"2026-03-02"}` {
		t.Errorf("Marshal() = %s", out)
	}

	var in wrapper
	if err := json.Unmarshal(out, &in); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !in.Due.Equal(NewDate(2026, time.March, 2)) {
		t.Errorf("Unmarshal() = %s, want 2026-03-02", in.Due)
	}
}

func TestDateJSONZeroValue(t *testing.T) {
	type wrapper struct {
		Due Date `json:"due"`
	}

	out, err := json.Marshal(wrapper{})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(out) != `{"due":null}` {
		t.Errorf("Marshal() = %s, want null date", out)
	}

	var in wrapper
	if err := json.Unmarshal([]byte(`{"due":null}`), &in); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !in.Due.IsZero() {
		t.Errorf("Unmarshal(null) = %s, want zero date", in.Due)
	}
}

func TestDateComparisons(t *testing.T) {
	a := NewDate(2026, time.March, 2)
	b := a.AddDays(3)

	if !a.Before(b) || !b.After(a) {
		t.Error("ordering is inconsistent")
	}
	if got := b.Sub(a); got != 72*time.Hour {
		t.Errorf("Sub() = %v, want 72h", got)
	}
	if a.AddDays(-1).Weekday() != time.Sunday {
		t.Error("AddDays(-1) did not step back a day")
	}
}

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []time.Weekday
		wantErr bool
	}{
		{"ShortNames", "Mon,Tue,Wed", []time.Weekday{time.Monday, time.Tuesday, time.Wednesday}, false},
		{"LongNames", "saturday,sunday", []time.Weekday{time.Saturday, time.Sunday}, false},
		{"MixedCaseAndSpace", " FRI , mon ", []time.Weekday{time.Friday, time.Monday}, false},
		{"Unknown", "Mon,Funday", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekdays(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWeekdays() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseWeekdays() has %d days, want %d", len(got), len(tt.want))
			}
			for _, day := range tt.want {
				if !got[day] {
					t.Errorf("ParseWeekdays() is missing %v", day)
				}
			}
		})
	}
}
