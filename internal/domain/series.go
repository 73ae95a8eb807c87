package domain

import (
	"time"
)

// DailyRow é uma linha já somada por data retornada pela camada de dados
type DailyRow struct {
	Date   time.Time
	Values map[string]int64
}

// SeriesPoint é um par data/valor usado na serialização das séries
type SeriesPoint struct {
	Date  string `json:"date"`
	Value int64  `json:"value"`
}

// SourceSeries é uma série diária imutável que cobre todas as datas da janela.
// Datas sem dado valem zero; reported guarda quais datas vieram da fonte.
type SourceSeries struct {
	window   Window
	values   []int64
	reported []bool
}

// NewSourceSeries monta a série a partir das contagens por data.
// Datas fora da janela são ignoradas.
func NewSourceSeries(w Window, counts map[time.Time]int64) SourceSeries {
	s := SourceSeries{
		window:   w,
		values:   make([]int64, w.Days()),
		reported: make([]bool, w.Days()),
	}
	for date, value := range counts {
		if !w.Contains(date) {
			continue
		}
		i := w.offset(date)
		s.values[i] += value
		s.reported[i] = true
	}
	return s
}

// ZeroSeries é a série de uma fonte sem nenhuma linha na janela
func ZeroSeries(w Window) SourceSeries {
	return NewSourceSeries(w, nil)
}

func (s SourceSeries) Window() Window {
	return s.window
}

// Len retorna a quantidade de datas cobertas
func (s SourceSeries) Len() int {
	return len(s.values)
}

// At retorna o valor da data; datas fora da janela valem zero
func (s SourceSeries) At(date time.Time) int64 {
	if len(s.values) == 0 || !s.window.Contains(date) {
		return 0
	}
	return s.values[s.window.offset(date)]
}

// Reported informa se a fonte retornou linha para a data
func (s SourceSeries) Reported(date time.Time) bool {
	if len(s.reported) == 0 || !s.window.Contains(date) {
		return false
	}
	return s.reported[s.window.offset(date)]
}

func (s SourceSeries) Total() int64 {
	var total int64
	for _, v := range s.values {
		total += v
	}
	return total
}

// Points retorna a série completa em ordem crescente de data
func (s SourceSeries) Points() []SeriesPoint {
	points := make([]SeriesPoint, 0, len(s.values))
	for i, v := range s.values {
		points = append(points, SeriesPoint{
			Date:  s.window.From.AddDate(0, 0, i).Format(time.DateOnly),
			Value: v,
		})
	}
	return points
}

// SourceAggregate agrupa as séries de um canal para uma janela
type SourceAggregate struct {
	Channel Channel
	Window  Window
	Series  map[string]SourceSeries
}

// Column retorna a série de uma coluna lógica, ou uma série zerada se ausente
func (a SourceAggregate) Column(name string) SourceSeries {
	if s, ok := a.Series[name]; ok {
		return s
	}
	return ZeroSeries(a.Window)
}

// Reported informa se alguma coluna do canal teve linha na data
func (a SourceAggregate) Reported(date time.Time) bool {
	for _, s := range a.Series {
		if s.Reported(date) {
			return true
		}
	}
	return false
}
