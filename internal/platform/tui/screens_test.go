package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/pocketpup/internal/core"
	"github.com/vovakirdan/pocketpup/internal/pet"
	"github.com/vovakirdan/pocketpup/internal/sprites"
)

func TestDrawGauge(t *testing.T) {
	s := core.NewScreen(40, 3)
	drawGauge(s, 0, 0, "HUNGER", 50)

	row := s.Row(0)
	if !strings.HasPrefix(row, "HUNGER") {
		t.Errorf("row = %q, expected the label first", row)
	}
	if s.Get(gaugeLabel, 0) != '[' || s.Get(gaugeLabel+1+gaugeCells, 0) != ']' {
		t.Errorf("row = %q, expected bar brackets", row)
	}

	// Half the stat fills half the bar.
	filled := 0
	for i := 0; i < gaugeCells; i++ {
		if s.Get(gaugeLabel+1+i, 0) == '█' {
			filled++
		}
	}
	if filled != gaugeCells/2 {
		t.Errorf("filled cells = %d, expected %d", filled, gaugeCells/2)
	}
	if !strings.Contains(row, "50") {
		t.Errorf("row = %q, expected the numeric value", row)
	}
}

func TestGaugeColor(t *testing.T) {
	if gaugeColor(10) != core.ColorBrightRed {
		t.Error("critical stat should render red")
	}
	if gaugeColor(40) != core.ColorYellow {
		t.Error("middling stat should render yellow")
	}
	if gaugeColor(90) != core.ColorBrightGreen {
		t.Error("healthy stat should render green")
	}
}

func TestDrawPetScreen(t *testing.T) {
	s := core.NewScreen(60, 22)
	stats := pet.New()
	frame := sprites.Frame{Lines: []string{"._.", "/|\\"}, Color: core.ColorWhite}

	drawPetScreen(s, "Rex", stats, frame, "nom!")

	out := s.String()
	if !strings.Contains(out, "REX") {
		t.Error("expected the pup name in the header")
	}
	if !strings.Contains(out, "age 0m") {
		t.Error("expected the age in the header")
	}
	if !strings.Contains(out, "._.") {
		t.Error("expected the sprite art")
	}
	if !strings.Contains(out, "HUNGER") || !strings.Contains(out, "HEALTH") {
		t.Error("expected the vitals gauges")
	}
	if !strings.Contains(out, "nom!") {
		t.Error("expected the notice line")
	}
}

func TestDrawAlertScreen(t *testing.T) {
	s := core.NewScreen(60, 22)
	drawAlertScreen(s, "Rex", []pet.StatName{pet.StatHunger, pet.StatEnergy})

	out := s.String()
	if !strings.Contains(out, "REX NEEDS YOU") {
		t.Error("expected the alert headline")
	}
	if !strings.Contains(out, "hunger is critically low") {
		t.Error("expected the hunger alert line")
	}
	if !strings.Contains(out, "energy is critically low") {
		t.Error("expected the energy alert line")
	}
}

func TestDrawDarkScreen(t *testing.T) {
	s := core.NewScreen(60, 22)
	drawDarkScreen(s)

	if !strings.Contains(s.String(), "press any key to wake") {
		t.Error("expected the wake hint")
	}
}

func TestBehaviorCaptions(t *testing.T) {
	for b := pet.BehaviorIdle; b <= pet.BehaviorVomiting; b++ {
		if behaviorCaption("Rex", b) == "" {
			t.Errorf("behavior %v has no caption", b)
		}
	}
	if !strings.Contains(behaviorCaption("Rex", pet.BehaviorHungry), "begging") {
		t.Error("hungry caption should mention begging")
	}
}
