// SPDX-License-Identifier: MIT
package feature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/vrpcore/feature"
	"github.com/katalvlaran/vrpcore/model"
)

func TestPipeline_EvaluateHardRoute_FirstViolationWins(t *testing.T) {
	calls := 0
	alwaysOK := feature.Feature{Name: "ok", Constraint: feature.ConstraintFunc(func(*feature.MoveContext) *feature.ConstraintViolation {
		calls++
		return nil
	})}
	alwaysViolates := feature.Feature{Name: "bad", Constraint: feature.ConstraintFunc(func(*feature.MoveContext) *feature.ConstraintViolation {
		calls++
		return &feature.ConstraintViolation{Code: 7, Stopped: true}
	})}
	neverCalled := feature.Feature{Name: "unreachable", Constraint: feature.ConstraintFunc(func(*feature.MoveContext) *feature.ConstraintViolation {
		t.Fatal("should not be evaluated after a violation")
		return nil
	})}

	p := feature.NewPipeline(alwaysOK, alwaysViolates, neverCalled)
	ctx := feature.NewRouteMove(nil, nil, model.Job{})
	v := p.EvaluateHardRoute(&ctx)

	assert.NotNil(t, v)
	assert.Equal(t, 7, v.Code)
	assert.True(t, v.Stopped)
	assert.Equal(t, 2, calls)
}

func TestPipeline_SoftCosts_Sum(t *testing.T) {
	obj := func(c model.Cost) feature.Objective { return constObjective(c) }
	p := feature.NewPipeline(
		feature.Feature{Name: "a", Objective: obj(2)},
		feature.Feature{Name: "b", Objective: obj(3)},
	)
	ctx := feature.NewRouteMove(nil, nil, model.Job{})
	assert.Equal(t, model.Cost(5), p.SoftRouteCost(&ctx))
	assert.Equal(t, model.Cost(5), p.SoftActivityCost(&ctx))
}

type constObjective model.Cost

func (c constObjective) SoftRouteCost(*feature.MoveContext) model.Cost    { return model.Cost(c) }
func (c constObjective) SoftActivityCost(*feature.MoveContext) model.Cost { return model.Cost(c) }

type mergeVeto struct{}

func (mergeVeto) Evaluate(*feature.MoveContext) *feature.ConstraintViolation { return nil }
func (mergeVeto) Merge(jobSrc, jobCand model.Job) (model.Job, error) {
	return model.Job{}, assertErr
}

var assertErr = assertError("merge vetoed")

type assertError string

func (e assertError) Error() string { return string(e) }

func TestPipeline_Merge_PropagatesVeto(t *testing.T) {
	p := feature.NewPipeline(feature.Feature{Name: "lock", Constraint: mergeVeto{}})
	_, err := p.Merge(model.Job{}, model.Job{})
	assert.ErrorIs(t, err, assertErr)
}
