package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidWindow indica uma janela com data de início posterior à data de fim
var ErrInvalidWindow = errors.New("invalid window")

// Window representa um intervalo inclusivo de datas de calendário
type Window struct {
	From time.Time `json:"from_date"`
	To   time.Time `json:"to_date"`
}

// DateOf trunca um instante para a data de calendário (meia-noite UTC)
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewWindow cria uma janela validada a partir de duas datas
func NewWindow(from, to time.Time) (Window, error) {
	w := Window{From: DateOf(from), To: DateOf(to)}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

// MustWindow é usado em testes e em janelas derivadas que já são válidas por construção
func MustWindow(from, to string) Window {
	f, err := time.Parse(time.DateOnly, from)
	if err != nil {
		panic(err)
	}
	t, err := time.Parse(time.DateOnly, to)
	if err != nil {
		panic(err)
	}
	w, err := NewWindow(f, t)
	if err != nil {
		panic(err)
	}
	return w
}

func (w Window) Validate() error {
	if w.From.IsZero() || w.To.IsZero() {
		return fmt.Errorf("%w: from_date e to_date são obrigatórios", ErrInvalidWindow)
	}
	if w.From.After(w.To) {
		return fmt.Errorf("%w: from_date %s é posterior a to_date %s",
			ErrInvalidWindow, w.From.Format(time.DateOnly), w.To.Format(time.DateOnly))
	}
	return nil
}

const secondsPerDay = 24 * 60 * 60

// daysBetween conta dias de calendário sem passar por time.Duration, que satura em ~292 anos
func daysBetween(from, to time.Time) int {
	return int((DateOf(to).Unix() - DateOf(from).Unix()) / secondsPerDay)
}

// Days retorna a quantidade de dias da janela, incluindo as duas pontas
func (w Window) Days() int {
	return daysBetween(w.From, w.To) + 1
}

// Previous retorna a janela imediatamente anterior com o mesmo tamanho.
// Ex.: [08/01..14/01] -> [01/01..07/01]
func (w Window) Previous() Window {
	n := w.Days()
	return Window{
		From: w.From.AddDate(0, 0, -n),
		To:   w.To.AddDate(0, 0, -n),
	}
}

// Dates lista todas as datas da janela em ordem crescente
func (w Window) Dates() []time.Time {
	dates := make([]time.Time, 0, w.Days())
	for d := DateOf(w.From); !d.After(w.To); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// Contains informa se a data pertence à janela
func (w Window) Contains(t time.Time) bool {
	d := DateOf(t)
	return !d.Before(w.From) && !d.After(w.To)
}

// Overlaps informa se as duas janelas compartilham ao menos uma data
func (w Window) Overlaps(other Window) bool {
	return !w.To.Before(other.From) && !other.To.Before(w.From)
}

// offset retorna a posição da data dentro da janela
func (w Window) offset(t time.Time) int {
	return daysBetween(w.From, t)
}

func (w Window) String() string {
	return fmt.Sprintf("%s..%s", w.From.Format(time.DateOnly), w.To.Format(time.DateOnly))
}
