// Package schedule derives the single display status of a class session from
// the overlapping facts the backend joins onto it: tap-in/tap-out timestamps
// and an optional leave record. Tap facts always win over leave, because a tap
// is what actually happened while leave is a forward-looking override.
package schedule

import (
	"strings"
	"time"

	"kelasboard/internal/backend"
)

// Category classifies a badge for presentation.
type Category int

const (
	// CategoryScheduled is the default "not yet started" state.
	CategoryScheduled Category = iota
	// CategoryActive is a class with a tap-in and no tap-out.
	CategoryActive
	// CategoryDone is a class with a tap-out.
	CategoryDone
	// CategoryDanger is a cancelled class.
	CategoryDanger
	// CategorySick is sick leave.
	CategorySick
	// CategoryLeave is any other leave type; the fallback for leave values
	// the three-way substring split does not recognize.
	CategoryLeave
)

// CSSClass maps a category onto the badge class the templates use.
func (c Category) CSSClass() string {
	switch c {
	case CategoryActive:
		return "badge-active"
	case CategoryDone:
		return "badge-done"
	case CategoryDanger:
		return "badge-danger"
	case CategorySick:
		return "badge-sick"
	case CategoryLeave:
		return "badge-leave"
	default:
		return "badge-scheduled"
	}
}

// Badge is the resolved display status of one schedule entry.
type Badge struct {
	Text     string
	Detail   string
	Category Category
}

type rule struct {
	match func(backend.Jadwal) bool
	build func(backend.Jadwal) Badge
}

// rules are evaluated top to bottom; the first match wins. Order is the
// precedence contract: tap-out, then tap-in, then leave, then default.
var rules = []rule{
	{
		match: func(j backend.Jadwal) bool { return j.WaktuKeluar != "" },
		build: func(j backend.Jadwal) Badge {
			return Badge{
				Text:     "SELESAI",
				Detail:   "Selesai: " + clock(j.WaktuKeluar),
				Category: CategoryDone,
			}
		},
	},
	{
		match: func(j backend.Jadwal) bool { return j.WaktuMasuk != "" && j.WaktuKeluar == "" },
		build: func(j backend.Jadwal) Badge {
			return Badge{
				Text:     "SEDANG BERLANGSUNG",
				Detail:   "Masuk: " + clock(j.WaktuMasuk),
				Category: CategoryActive,
			}
		},
	},
	{
		match: func(j backend.Jadwal) bool { return j.StatusIzin != "" },
		build: func(j backend.Jadwal) Badge {
			return Badge{
				Text:     strings.ToUpper(j.StatusIzin),
				Detail:   j.KeteranganIzin,
				Category: LeaveCategory(j.StatusIzin),
			}
		},
	},
	{
		match: func(backend.Jadwal) bool { return true },
		build: func(backend.Jadwal) Badge {
			return Badge{
				Text:     "TERJADWAL",
				Detail:   "Belum dimulai",
				Category: CategoryScheduled,
			}
		},
	},
}

// Resolve computes the one display status for a schedule entry.
func Resolve(j backend.Jadwal) Badge {
	for _, r := range rules {
		if r.match(j) {
			return r.build(j)
		}
	}
	// unreachable: the last rule always matches
	return Badge{}
}

// LeaveCategory splits leave types by substring, case-insensitively. The
// backend vocabulary is free text, so anything unrecognized falls back to the
// generic leave category.
func LeaveCategory(jenis string) Category {
	lower := strings.ToLower(jenis)
	switch {
	case strings.Contains(lower, "dibatalkan"):
		return CategoryDanger
	case strings.Contains(lower, "sakit"):
		return CategorySick
	default:
		return CategoryLeave
	}
}

var clockLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"15:04:05",
	"15:04",
}

// clock renders a backend timestamp as HH:mm, falling back to the raw string
// when none of the known layouts parse.
func clock(ts string) string {
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.Format("15:04")
		}
	}
	return ts
}
