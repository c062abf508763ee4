package glide

import (
	"math"
	"testing"

	"github.com/deadstick-go/deadstick/pkg/dubins"
)

func TestRatioScenarioA2(t *testing.T) {
	// A2: glide.distance = 1.52 nm per 1000ft -> ratio ~9.24, height lost
	// over 1000m ground track ~108.2m.
	r := Ratio(1.52)
	if math.Abs(r-9.24) > 0.02 {
		t.Errorf("Ratio(1.52) = %v, want ~9.24", r)
	}

	p := Performance{Ratio: r}
	if h := p.HeightLostForGroundTrack(1000); math.Abs(h-108.2) > 0.5 {
		t.Errorf("HeightLostForGroundTrack(1000) = %v, want ~108.2", h)
	}
}

func TestTurnRadiusScenarioA3(t *testing.T) {
	// A3: best-glide 65kt, bank 45deg -> r ~256.5m.
	bestGlideKt := 65.0
	bestGlideMS := bestGlideKt * 0.514444
	p := Performance{BestGlideSpeed: bestGlideMS}

	bank := math.Pi / 4
	r := p.TurnRadius(bank)
	if math.Abs(r-256.5) > 2 {
		t.Errorf("TurnRadius(45deg) = %v, want ~256.5", r)
	}
}

func TestMonotonicHeightLossWithBank(t *testing.T) {
	p := Performance{Ratio: 10, BestGlideSpeed: 30}

	start := dubins.DirectedPoint{Point: dubins.Point{X: 0, Y: 0}, Angle: 0}
	end := dubins.DirectedPoint{Point: dubins.Point{X: 500, Y: 300}, Angle: math.Pi / 2}

	cands := dubins.Candidates(start, end, 100)
	if len(cands) == 0 {
		t.Fatal("expected at least one candidate")
	}

	bank1, bank2 := math.Pi/8, math.Pi/4
	for _, c := range cands {
		loss1 := p.HeightLossOverPath(c.Path, bank1)
		loss2 := p.HeightLossOverPath(c.Path, bank2)
		if loss2 < loss1-1e-9 {
			t.Errorf("%s: height loss decreased with more bank: %v (b1) -> %v (b2)", c.Word, loss1, loss2)
		}
	}
}

func TestRSRStraightLineHeightLoss(t *testing.T) {
	// A4: RSR straight 1000m tangent, zero arc angle -> height loss == 1000/ratio.
	p := Performance{Ratio: 9.24}
	start := dubins.DirectedPoint{Point: dubins.Point{X: 0, Y: 0}, Angle: 0}
	end := dubins.DirectedPoint{Point: dubins.Point{X: 1000, Y: 0}, Angle: 0}

	for _, c := range dubins.Candidates(start, end, 100) {
		if c.Word != dubins.RSR {
			continue
		}
		loss := p.HeightLossOverPath(c.Path, math.Pi/6)
		want := 1000 / p.Ratio
		if math.Abs(loss-want) > 1e-6 {
			t.Errorf("RSR height loss = %v, want %v", loss, want)
		}
	}
}
