package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/tdhazard/pkg/domain/model"
	"github.com/secmon-lab/tdhazard/pkg/domain/model/td"
	"github.com/secmon-lab/tdhazard/pkg/domain/types"
)

func TestConditionValidate(t *testing.T) {
	boolSchema := td.DataSchema{Type: "boolean"}
	strSchema := td.DataSchema{Type: "string"}
	enumSchema := td.DataSchema{Type: "string", Enum: []any{"off", "eco", "boost"}}

	tests := []struct {
		name    string
		cond    model.Condition
		schema  td.DataSchema
		wantErr bool
	}{
		{"eq bool on boolean domain", model.Condition{Op: types.ConditionOpEq, Value: true}, boolSchema, false},
		{"eq string on boolean domain", model.Condition{Op: types.ConditionOpEq, Value: "on"}, boolSchema, true},
		{"ne string on string domain", model.Condition{Op: types.ConditionOpNe, Value: "idle"}, strSchema, false},
		{"gt on numeric domain", model.Condition{Op: types.ConditionOpGt, Value: 40.0}, numericSchema(0, 100), false},
		{"gt on boolean domain", model.Condition{Op: types.ConditionOpGt, Value: 40.0}, boolSchema, true},
		{"gt with non-numeric value", model.Condition{Op: types.ConditionOpGt, Value: "warm"}, numericSchema(0, 100), true},
		{"enum member", model.Condition{Op: types.ConditionOpEq, Value: "boost"}, enumSchema, false},
		{"enum non-member", model.Condition{Op: types.ConditionOpEq, Value: "turbo"}, enumSchema, true},
		{"invalid operator", model.Condition{Op: "contains", Value: "x"}, strSchema, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cond.Validate(tt.schema)
			if tt.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}

func TestConditionEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		cond  model.Condition
		value any
		want  bool
	}{
		{"eq bool holds", model.Condition{Op: types.ConditionOpEq, Value: true}, true, true},
		{"eq bool fails", model.Condition{Op: types.ConditionOpEq, Value: true}, false, false},
		{"ne string holds", model.Condition{Op: types.ConditionOpNe, Value: "idle"}, "active", true},
		{"lt holds", model.Condition{Op: types.ConditionOpLt, Value: 50.0}, 30.0, true},
		{"le at boundary", model.Condition{Op: types.ConditionOpLe, Value: 50.0}, 50.0, true},
		{"gt fails at boundary", model.Condition{Op: types.ConditionOpGt, Value: 50.0}, 50.0, false},
		{"ge holds", model.Condition{Op: types.ConditionOpGe, Value: 50.0}, 80.0, true},
		{"eq across numeric types", model.Condition{Op: types.ConditionOpEq, Value: 50}, 50.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cond.Evaluate(tt.value)
			gt.NoError(t, err).Required()
			gt.Value(t, got).Equal(tt.want)
		})
	}

	t.Run("ordering against non-numeric value", func(t *testing.T) {
		cond := model.Condition{Op: types.ConditionOpLt, Value: 50.0}
		_, err := cond.Evaluate("warm")
		gt.Error(t, err)
	})
}
