package presensi

import (
	"fmt"
	"time"
)

type Action string

const (
	Masuk  Action = "masuk"
	Keluar Action = "keluar"
)

func ParseAction(s string) (Action, bool) {
	switch Action(s) {
	case Masuk, Keluar:
		return Action(s), true
	}
	return "", false
}

// WindowConfig berisi override mentah dari environment (boleh kosong / salah format).
type WindowConfig struct {
	MasukStart  string
	MasukEnd    string
	KeluarStart string
	KeluarEnd   string
}

// Gate memutuskan apakah presensi masuk/keluar boleh dilakukan pada jam tertentu.
type Gate struct {
	masuk  TimeWindow
	keluar TimeWindow
}

func NewGate(cfg WindowConfig) *Gate {
	return &Gate{
		masuk:  ResolveWindow(cfg.MasukStart, cfg.MasukEnd, DefaultMasuk),
		keluar: ResolveWindow(cfg.KeluarStart, cfg.KeluarEnd, DefaultKeluar),
	}
}

func (g *Gate) Window(action Action) (TimeWindow, bool) {
	switch action {
	case Masuk:
		return g.masuk, true
	case Keluar:
		return g.keluar, true
	}
	return TimeWindow{}, false
}

type Decision struct {
	Action  Action     `json:"action"`
	Allowed bool       `json:"allowed"`
	Window  TimeWindow `json:"window"`
	Now     string     `json:"now"`
}

// Evaluate murni: hasil hanya bergantung pada action, now, dan konfigurasi.
// Jam yang kosong/tidak valid dianggap tidak diizinkan.
func (g *Gate) Evaluate(action Action, now string) Decision {
	d := Decision{Action: action, Now: now}
	w, ok := g.Window(action)
	if !ok {
		return d
	}
	d.Window = w
	d.Allowed = w.Contains(now)
	return d
}

// EvaluateAt mengonversi t ke WIB dulu. Zero time berarti jam tidak diketahui.
func (g *Gate) EvaluateAt(action Action, t time.Time) Decision {
	if t.IsZero() {
		return g.Evaluate(action, "")
	}
	return g.Evaluate(action, Clock(t))
}

func (d Decision) Message() string {
	now := d.Now
	if now == "" {
		now = "-"
	}
	if d.Allowed {
		return fmt.Sprintf("Presensi %s dibuka %s WIB. Sekarang: %s WIB.", d.Action, d.Window, now)
	}
	return fmt.Sprintf("Presensi %s hanya %s WIB. Sekarang: %s WIB.", d.Action, d.Window, now)
}
