// SPDX-License-Identifier: MIT

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rmns82839-rgb/Matrices/chain"
	"github.com/rmns82839-rgb/Matrices/evaluator"
	"github.com/rmns82839-rgb/Matrices/matrix"
)

func m(rows ...[]float64) *matrix.Dense { return matrix.MustFromRows(rows) }

func TestEvaluate_AddChainScenario(t *testing.T) {
	t.Parallel()

	named := map[string]matrix.Matrix{"A": m([]float64{1}), "B": m([]float64{2}), "C": m([]float64{3})}
	res, err := chain.EvaluateString("A+B+C", named)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{6}}, res.Value.ToRows())
	require.Len(t, res.Stages, 2)
	require.Equal(t, "A+B+C", res.Label)

	require.Equal(t, 1, res.Stages[0].Index)
	require.Equal(t, "(A) + B", res.Stages[0].Label)
	require.Equal(t, "A", res.Stages[0].Left)
	require.Equal(t, "B", res.Stages[0].Right)
	require.Equal(t, [][]string{{"1 + 2"}}, res.Stages[0].Steps.Texts())
	require.Equal(t, [][]float64{{3}}, res.Stages[0].Result.ToRows())

	require.Equal(t, 2, res.Stages[1].Index)
	require.Equal(t, "(A+B) + C", res.Stages[1].Label)
	require.Equal(t, "A+B", res.Stages[1].Left)
	require.Equal(t, [][]string{{"3 + 3"}}, res.Stages[1].Steps.Texts())
	require.Same(t, res.Stages[1].Result, res.Value)
}

func TestEvaluate_MultiplyChainAbortsAtFirstStage(t *testing.T) {
	t.Parallel()

	named := map[string]matrix.Matrix{
		"A": m([]float64{1, 2}, []float64{3, 4}),                  // 2x2
		"B": m([]float64{1, 2}, []float64{3, 4}, []float64{5, 6}), // 3x2
		"C": m([]float64{1}, []float64{1}),
	}
	res, err := chain.EvaluateString("AxBxC", named)
	require.Nil(t, res)
	require.ErrorIs(t, err, chain.ErrMultiplicativeMismatch)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.NotErrorIs(t, err, chain.ErrAdditiveMismatch)

	de, ok := chain.IsDimensionError(err)
	require.True(t, ok)
	require.Equal(t, chain.Multiplicative, de.Kind)
	require.Equal(t, 1, de.Stage)
	require.Equal(t, "B", de.Label)
	require.Equal(t, 2, de.Expected())
	require.Equal(t, 3, de.Actual())
}

func TestEvaluate_AbortBeforeLaterStage(t *testing.T) {
	t.Parallel()

	// stage 2 fails; stage 3 would fail differently if it were attempted
	named := map[string]matrix.Matrix{
		"A": m([]float64{1, 2}),
		"B": m([]float64{3, 4}),
		"C": m([]float64{1}, []float64{2}),
	}
	_, err := chain.EvaluateString("A+B-C+A", named)
	de, ok := chain.IsDimensionError(err)
	require.True(t, ok)
	require.Equal(t, chain.Additive, de.Kind)
	require.Equal(t, 2, de.Stage)
	require.ErrorIs(t, err, chain.ErrAdditiveMismatch)
}

func TestEvaluate_MultiplyLabels(t *testing.T) {
	t.Parallel()

	id := m([]float64{1, 0}, []float64{0, 1})
	named := map[string]matrix.Matrix{"A": m([]float64{1, 2}, []float64{3, 4}), "B": id, "C": id}
	res, err := chain.EvaluateString("AxBxC", named)
	require.NoError(t, err)
	require.Equal(t, "(A) x B", res.Stages[0].Label)
	require.Equal(t, "(A x B) x C", res.Stages[1].Label)
	require.Equal(t, "AxBxC", res.Label)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, res.Value.ToRows())
}

func TestEvaluate_MixedChainIsLeftToRight(t *testing.T) {
	t.Parallel()

	named := map[string]matrix.Matrix{
		"A": m([]float64{1, 2}),
		"B": m([]float64{3, 4}),
		"C": m([]float64{1}, []float64{1}),
	}
	res, err := chain.EvaluateString("A+BxC", named)
	require.NoError(t, err)
	// (A+B) x C = [4 6] x [1;1] = [10]
	require.Equal(t, [][]float64{{10}}, res.Value.ToRows())
	require.Equal(t, "(A) + B", res.Stages[0].Label)
	require.Equal(t, "(A+B) x C", res.Stages[1].Label)
	require.Equal(t, [][]string{{"(4 x 1) + (6 x 1)"}}, res.Stages[1].Steps.Texts())
	require.Equal(t, "A+BxC", res.Label)

	res, err = chain.EvaluateString("CxA-A", map[string]matrix.Matrix{
		"A": m([]float64{1, 2}),
		"C": m([]float64{1}, []float64{1}),
	})
	require.Error(t, err, "2x2 minus 1x2")
	require.Nil(t, res)
}

func TestEvaluate_LeftAssociativity(t *testing.T) {
	t.Parallel()

	a := m([]float64{1, 2}, []float64{3, 4})
	b := m([]float64{5, 6}, []float64{7, 8})
	c := m([]float64{9, 10}, []float64{11, 12})

	res, err := chain.Evaluate(chain.MustParseExpression("A+B-C"), []matrix.Matrix{a, b, c})
	require.NoError(t, err)

	ab, err := evaluator.Apply(evaluator.Add, a, b)
	require.NoError(t, err)
	want, err := evaluator.Apply(evaluator.Subtract, ab.Value, c)
	require.NoError(t, err)
	require.Equal(t, want.Value.ToRows(), res.Value.ToRows())
	require.Equal(t, "(A+B) - C", res.Stages[1].Label)
}

func TestEvaluate_TwoOperandsEqualsPairwise(t *testing.T) {
	t.Parallel()

	a := m([]float64{1, 2, 3}, []float64{4, 5, 6})
	b := m([]float64{7, 8}, []float64{9, 10}, []float64{11, 12})

	for _, op := range evaluator.Operations() {
		x, y := a, a
		if op == evaluator.Multiply {
			y = b
		}
		expr, err := chain.NewExpression([]string{"A", "B"}, []evaluator.Operation{op})
		require.NoError(t, err)
		res, err := chain.Evaluate(expr, []matrix.Matrix{x, y})
		require.NoError(t, err)
		direct, err := evaluator.Apply(op, x, y)
		require.NoError(t, err)
		require.Len(t, res.Stages, 1)
		require.Equal(t, direct.Value.ToRows(), res.Value.ToRows())
		require.Equal(t, direct.Steps.Texts(), res.Stages[0].Steps.Texts())
	}
}

func TestEvaluate_EmptyOperand(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.Dense
	_, err := chain.Evaluate(chain.MustParseExpression("A+B+C"), []matrix.Matrix{m([]float64{1}), m([]float64{2}), typedNil})
	require.ErrorIs(t, err, chain.ErrEmptyOperand)
	var oe *chain.OperandError
	require.ErrorAs(t, err, &oe)
	require.Equal(t, 2, oe.Stage)
	require.Equal(t, "A+B", oe.Left)
	require.Equal(t, "C", oe.Right)

	_, err = chain.Evaluate(chain.MustParseExpression("A+B"), []matrix.Matrix{nil, m([]float64{2})})
	require.ErrorAs(t, err, &oe)
	require.Equal(t, 1, oe.Stage)
}

func TestEvaluate_OperandCount(t *testing.T) {
	t.Parallel()

	_, err := chain.Evaluate(chain.MustParseExpression("A+B"), []matrix.Matrix{m([]float64{1})})
	require.ErrorIs(t, err, chain.ErrOperandCount)

	_, err = chain.Evaluate(chain.Expression{}, nil)
	require.ErrorIs(t, err, chain.ErrSyntax)
}

func TestEvaluateNamed_MissingAndRepeated(t *testing.T) {
	t.Parallel()

	a := m([]float64{1, 2})
	res, err := chain.EvaluateNamed(chain.MustParseExpression("A+A"), map[string]matrix.Matrix{"A": a})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 4}}, res.Value.ToRows())

	_, err = chain.EvaluateString("A+B-D", map[string]matrix.Matrix{"A": a, "B": a})
	require.ErrorIs(t, err, chain.ErrEmptyOperand)
	var oe *chain.OperandError
	require.ErrorAs(t, err, &oe)
	require.Equal(t, 2, oe.Stage)
	require.Equal(t, "A+B", oe.Left)
	require.Equal(t, "D", oe.Right)

	_, err = chain.EvaluateString("Z+A", map[string]matrix.Matrix{"A": a})
	require.ErrorAs(t, err, &oe)
	require.Equal(t, 1, oe.Stage)
	require.Equal(t, "Z", oe.Left)

	_, err = chain.EvaluateString("A+", nil)
	require.ErrorIs(t, err, chain.ErrSyntax)
}

func TestEvaluate_InputsUntouched(t *testing.T) {
	t.Parallel()

	a := m([]float64{1, 2}, []float64{3, 4})
	_, err := chain.EvaluateString("AxA+A", map[string]matrix.Matrix{"A": a})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, a.ToRows())
}

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	de := &chain.DimensionError{Kind: chain.Multiplicative, Stage: 1, Label: "B", LeftRows: 2, LeftCols: 2, RightRows: 3, RightCols: 2}
	require.Equal(t, "chain: multiplicative dimension mismatch at stage 1 (B): left has 2 columns, B has 3 rows", de.Error())
	de.Kind = chain.Additive
	require.Equal(t, "chain: additive dimension mismatch at stage 1 (B): left is 2x2, B is 3x2", de.Error())
	require.Equal(t, "additive", chain.Additive.String())

	oe := &chain.OperandError{Stage: 2, Left: "A+B", Right: "C"}
	require.Equal(t, "chain: empty operand at stage 2: A+B and C must both be non-empty", oe.Error())
}
