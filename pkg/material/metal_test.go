package material

import (
	"math/rand"
	"testing"

	"github.com/pathtracer/engine/pkg/core"
)

func TestNewMetalFuzzClamp(t *testing.T) {
	tests := []struct {
		name      string
		input     float64
		wantFuzz  float64
	}{
		{"valid 0.0", 0.0, 0.0},
		{"valid 0.5", 0.5, 0.5},
		{"valid 1.0", 1.0, 1.0},
		{"clamp above 1.0", 1.5, 1.0},
		{"clamp below 0.0", -0.5, 0.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.input)
			if metal.Fuzz != tt.wantFuzz {
				t.Errorf("Fuzz = %f, want %f", metal.Fuzz, tt.wantFuzz)
			}
		})
	}
}

func TestMetalPerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)
	random := rand.New(rand.NewSource(42))

	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1).Normalize())
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}

	scatter, didScatter := metal.Scatter(rayIn, hit, random)
	if !didScatter {
		t.Fatal("Metal should scatter")
	}

	expected := core.NewVec3(0, -1, 1).Normalize()
	actual := scatter.Scattered.Direction.Normalize()
	if actual.Subtract(expected).Length() > 1e-10 {
		t.Errorf("reflection = %v, want %v", actual, expected)
	}
	if !scatter.Attenuation.Equals(albedo) {
		t.Errorf("Attenuation = %v, want %v", scatter.Attenuation, albedo)
	}
	if scatter.PDF != 0 {
		t.Errorf("specular PDF = %f, want 0", scatter.PDF)
	}
}

func TestMetalFuzzyReflectionVaries(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.8, 0.8)
	metal := NewMetal(albedo, 0.5)
	random := rand.New(rand.NewSource(42))

	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}

	directions := make([]core.Vec3, 10)
	for i := range directions {
		scatter, didScatter := metal.Scatter(rayIn, hit, random)
		if !didScatter {
			t.Fatalf("Metal should scatter on iteration %d", i)
		}
		directions[i] = scatter.Scattered.Direction.Normalize()
	}

	allSame := true
	for i := 1; i < len(directions); i++ {
		if directions[i].Subtract(directions[0]).Length() > 1e-10 {
			allSame = false
			break
		}
	}
	if allSame {
		t.Error("fuzzy metal should produce varying reflection directions")
	}
}

func TestMetalScatterAbsorptionAtGrazingAngle(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 1.0)
	random := rand.New(rand.NewSource(123))

	rayIn := core.NewRay(core.NewVec3(-1, 0, 0.01), core.NewVec3(1, 0, -0.01).Normalize())
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}

	absorbed, scattered := 0, 0
	for i := 0; i < 1000; i++ {
		_, didScatter := metal.Scatter(rayIn, hit, random)
		if didScatter {
			scattered++
		} else {
			absorbed++
		}
	}

	if absorbed == 0 {
		t.Error("expected some rays absorbed at grazing angle with maximum fuzz")
	}
	if scattered == 0 {
		t.Error("expected some rays scattered")
	}
}

func TestMetalScatteringPDFAlwaysZero(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.5)
	hit := core.HitRecord{Normal: core.NewVec3(0, 0, 1)}
	ray := core.NewRay(core.Vec3{}, core.NewVec3(1, 0, -1).Normalize())
	scattered := core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 1).Normalize())

	if pdf := metal.ScatteringPDF(ray, hit, scattered); pdf != 0 {
		t.Errorf("ScatteringPDF() = %f, want 0 (delta function)", pdf)
	}
}
