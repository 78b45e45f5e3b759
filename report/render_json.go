// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/rmns82839-rgb/Matrices/chain"
	"github.com/rmns82839-rgb/Matrices/matrix"
)

// JSON shapes. Field order is the declaration order.
type (
	jsonReport struct {
		Title     string         `json:"title"`
		Language  string         `json:"language"`
		Header    HeaderFields   `json:"header"`
		Exercises []jsonExercise `json:"exercises"`
	}

	jsonExercise struct {
		ID       string        `json:"id"`
		Number   int           `json:"number"`
		Title    string        `json:"title"`
		Name     string        `json:"name"`
		Label    string        `json:"label"`
		Rows     int           `json:"rows"`
		Cols     int           `json:"cols"`
		Operands []jsonOperand `json:"operands"`
		Stages   []jsonStage   `json:"stages"`
		Result   jsonGrid      `json:"result"`
	}

	jsonOperand struct {
		Label  string   `json:"label"`
		Values jsonGrid `json:"values"`
	}

	jsonStage struct {
		Index  int        `json:"index"`
		Label  string     `json:"label"`
		Op     string     `json:"op"`
		Steps  [][]string `json:"steps"`
		Result jsonGrid   `json:"result"`
	}
)

// jsonNumber is a matrix cell. encoding/json rejects NaN and ±Inf, so those
// are written as the strings "NaN", "Infinity" and "-Infinity".
type jsonNumber float64

// MarshalJSON implements json.Marshaler.
func (n jsonNumber) MarshalJSON() ([]byte, error) {
	v := float64(n)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return json.Marshal(matrix.FormatRaw(v))
	}

	return json.Marshal(v)
}

type jsonGrid [][]jsonNumber

func gridJSON(m *matrix.Dense) jsonGrid {
	rows := m.ToRows()
	g := make(jsonGrid, len(rows))
	for i, row := range rows {
		g[i] = make([]jsonNumber, len(row))
		for j, v := range row {
			g[i][j] = jsonNumber(v)
		}
	}

	return g
}

// RenderJSON writes the report as indented JSON with raw float values.
// Non-finite cells are written as strings.
func RenderJSON(w io.Writer, r *Report) error {
	out := jsonReport{
		Title:     r.text(keyReportTitle),
		Language:  r.Language().String(),
		Header:    r.HeaderFields(),
		Exercises: make([]jsonExercise, 0, len(r.exercises)),
	}
	for _, ex := range r.exercises {
		je := jsonExercise{
			ID:       ex.ID.String(),
			Number:   ex.Number,
			Title:    ex.Title(),
			Name:     ex.Name,
			Label:    ex.Label,
			Rows:     ex.Result.Rows(),
			Cols:     ex.Result.Cols(),
			Operands: make([]jsonOperand, len(ex.Operands)),
			Stages:   make([]jsonStage, len(ex.Stages)),
			Result:   gridJSON(ex.Result),
		}
		for i, op := range ex.Operands {
			je.Operands[i] = jsonOperand{Label: op.Label, Values: gridJSON(op.Value)}
		}
		for i, st := range ex.Stages {
			je.Stages[i] = stageJSON(st)
		}
		out.Exercises = append(out.Exercises, je)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("report: render json: %w", err)
	}

	return nil
}

func stageJSON(st chain.Stage) jsonStage {
	return jsonStage{
		Index:  st.Index,
		Label:  st.Label,
		Op:     st.Op.Symbol(),
		Steps:  st.Steps.Texts(),
		Result: gridJSON(st.Result),
	}
}
