package core

import (
	"math"
	"testing"
)

func TestONBFromWAxisAligned(t *testing.T) {
	onb := NewONBFromW(NewVec3(0, 0, 1))
	if math.Abs(onb.W.Dot(onb.U)) > 1e-9 || math.Abs(onb.W.Dot(onb.V)) > 1e-9 || math.Abs(onb.U.Dot(onb.V)) > 1e-9 {
		t.Errorf("ONB axes not mutually orthogonal: %+v", onb)
	}
}

func TestONBLocalZMapsToW(t *testing.T) {
	n := NewVec3(1, 2, 3).Normalize()
	onb := NewONBFromW(n)
	local := onb.Local(0, 0, 1)
	if !local.Equals(onb.W) {
		t.Errorf("Local(0,0,1) = %v, want %v", local, onb.W)
	}
}

func TestONBHandlesNearXAxis(t *testing.T) {
	// w close to (1,0,0) exercises the branch that picks a different helper axis
	onb := NewONBFromW(NewVec3(0.99, 0.01, 0))
	if math.Abs(onb.U.Length()-1) > 1e-9 || math.Abs(onb.V.Length()-1) > 1e-9 {
		t.Errorf("ONB basis vectors not unit length: %+v", onb)
	}
}
