package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/cloud-ru/mortgage-calculator-go/internal/calculations"
)

// ErrEmptySchedule возвращается при попытке нарисовать пустой график
var ErrEmptySchedule = errors.New("chart: empty schedule")

const (
	gridLines   = 5
	panelGap    = 70.0
	marginLeft  = 90.0
	marginRight = 30.0
	marginTop   = 50.0
	marginBot   = 50.0
)

var (
	principalColor = [3]float64{0.18, 0.49, 0.20} // #2E7D32
	interestColor  = [3]float64{0.78, 0.16, 0.16} // #C62828
	balanceColor   = [3]float64{0.08, 0.40, 0.75} // #1565C0
)

// Style описывает размеры изображения
type Style struct {
	Width  int
	Height int
}

// Renderer рисует PNG с двумя панелями графиков
type Renderer struct {
	style Style
}

// NewRenderer создает рендерер с заданным размером
func NewRenderer(width, height int) *Renderer {
	if width <= 0 {
		width = 900
	}
	if height <= 0 {
		height = 700
	}
	return &Renderer{style: Style{Width: width, Height: height}}
}

type panel struct {
	title  string
	yTitle string
	x, y   float64
	w, h   float64
	maxY   float64
	points int
}

func (p panel) px(i int) float64 {
	if p.points <= 1 {
		return p.x
	}
	return p.x + p.w*float64(i)/float64(p.points-1)
}

func (p panel) py(v float64) float64 {
	if p.maxY <= 0 {
		return p.y + p.h
	}
	return p.y + p.h - p.h*v/p.maxY
}

// Render рисует график в формате PNG
func (r *Renderer) Render(schedule calculations.Schedule, w io.Writer) error {
	if len(schedule) == 0 {
		return ErrEmptySchedule
	}

	start := time.Now()
	defer func() {
		log.WithField("duration_ms", time.Since(start).Milliseconds()).
			WithField("periods", len(schedule)).
			Debug("Chart rendering completed")
	}()

	series := NewSeries(schedule)

	regular, err := loadFont(goregular.TTF, 12)
	if err != nil {
		return fmt.Errorf("failed to load font: %w", err)
	}
	bold, err := loadFont(gobold.TTF, 14)
	if err != nil {
		return fmt.Errorf("failed to load font: %w", err)
	}

	width := float64(r.style.Width)
	height := float64(r.style.Height)
	panelH := (height - marginTop - marginBot - panelGap) / 2
	panelW := width - marginLeft - marginRight

	dc := gg.NewContext(r.style.Width, r.style.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	top := panel{
		title:  "Principal vs Interest Payment Over Time",
		yTitle: "Payment Amount ($)",
		x:      marginLeft,
		y:      marginTop,
		w:      panelW,
		h:      panelH,
		maxY:   schedule[0].PaymentAmount,
		points: series.Len(),
	}
	bottom := panel{
		title:  "Remaining Loan Balance",
		yTitle: "Remaining Balance ($)",
		x:      marginLeft,
		y:      marginTop + panelH + panelGap,
		w:      panelW,
		h:      panelH,
		maxY:   schedule[0].RemainingBalance + schedule[0].PrincipalPortion,
		points: series.Len(),
	}

	for _, p := range []panel{top, bottom} {
		drawFrame(dc, p, regular, bold, series)
	}

	fillArea(dc, top, series.Interest, interestColor, 0.15)
	drawLine(dc, top, series.Principal, principalColor, 2)
	drawLine(dc, top, series.Interest, interestColor, 2)

	fillArea(dc, bottom, series.Balance, balanceColor, 0.2)
	drawLine(dc, bottom, series.Balance, balanceColor, 3)

	drawLegend(dc, regular, width-marginRight, marginTop-28)

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

func drawFrame(dc *gg.Context, p panel, regular, bold font.Face, series Series) {
	dc.SetFontFace(bold)
	dc.SetRGB(0.15, 0.15, 0.15)
	dc.DrawStringAnchored(p.title, p.x+p.w/2, p.y-14, 0.5, 0)

	dc.SetFontFace(regular)

	// горизонтальная сетка с подписями оси Y
	for i := 0; i <= gridLines; i++ {
		v := p.maxY * float64(i) / gridLines
		y := p.py(v)
		dc.SetRGB(0.9, 0.9, 0.9)
		dc.SetLineWidth(1)
		dc.DrawLine(p.x, y, p.x+p.w, y)
		dc.Stroke()

		dc.SetRGB(0.35, 0.35, 0.35)
		dc.DrawStringAnchored(formatAxis(v), p.x-8, y, 1, 0.35)
	}

	// подписи оси X по годам
	step := xLabelStep(p.points)
	for i := 0; i < p.points; i += step {
		x := p.px(i)
		dc.DrawStringAnchored(fmt.Sprintf("%d", series.PaymentNumbers[i]), x, p.y+p.h+16, 0.5, 0)
	}

	dc.SetRGB(0.4, 0.4, 0.4)
	dc.SetLineWidth(1)
	dc.DrawLine(p.x, p.y+p.h, p.x+p.w, p.y+p.h)
	dc.DrawLine(p.x, p.y, p.x, p.y+p.h)
	dc.Stroke()

	dc.DrawStringAnchored("Payment Number (Month)", p.x+p.w/2, p.y+p.h+34, 0.5, 0)

	dc.Push()
	dc.RotateAbout(gg.Radians(-90), p.x-70, p.y+p.h/2)
	dc.DrawStringAnchored(p.yTitle, p.x-70, p.y+p.h/2, 0.5, 0.5)
	dc.Pop()
}

func drawLine(dc *gg.Context, p panel, values []float64, color [3]float64, width float64) {
	dc.SetRGB(color[0], color[1], color[2])
	dc.SetLineWidth(width)
	for i, v := range values {
		if i == 0 {
			dc.MoveTo(p.px(i), p.py(v))
		} else {
			dc.LineTo(p.px(i), p.py(v))
		}
	}
	dc.Stroke()
}

func fillArea(dc *gg.Context, p panel, values []float64, color [3]float64, alpha float64) {
	dc.SetRGBA(color[0], color[1], color[2], alpha)
	dc.MoveTo(p.px(0), p.py(0))
	for i, v := range values {
		dc.LineTo(p.px(i), p.py(v))
	}
	dc.LineTo(p.px(len(values)-1), p.py(0))
	dc.ClosePath()
	dc.Fill()
}

func drawLegend(dc *gg.Context, face font.Face, right, y float64) {
	dc.SetFontFace(face)
	items := []struct {
		label string
		color [3]float64
	}{
		{"Principal Payment", principalColor},
		{"Interest Payment", interestColor},
		{"Remaining Balance", balanceColor},
	}

	x := right
	for i := len(items) - 1; i >= 0; i-- {
		item := items[i]
		tw, _ := dc.MeasureString(item.label)
		x -= tw
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawStringAnchored(item.label, x, y, 0, 0.35)
		x -= 26
		dc.SetRGB(item.color[0], item.color[1], item.color[2])
		dc.SetLineWidth(3)
		dc.DrawLine(x, y, x+20, y)
		dc.Stroke()
		x -= 16
	}
}

// xLabelStep подбирает шаг подписей так, чтобы их было не больше десяти
func xLabelStep(points int) int {
	step := 12
	for points/step > 10 {
		step += 12
	}
	return step
}

func formatAxis(v float64) string {
	switch {
	case v >= 1e6:
		return fmt.Sprintf("$%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("$%.0fK", math.Round(v/1e3))
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}

func loadFont(fontData []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(fontData)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return face, nil
}
