package core

import (
	"testing"
)

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name         string
		rayOrigin    Vec3
		rayDirection Vec3
		expectHit    bool
	}{
		{
			name:         "ray through center",
			rayOrigin:    NewVec3(0, 0, -5),
			rayDirection: NewVec3(0, 0, 1),
			expectHit:    true,
		},
		{
			name:         "ray pointing away",
			rayOrigin:    NewVec3(0, 0, -5),
			rayDirection: NewVec3(0, 0, -1),
			expectHit:    false,
		},
		{
			name:         "ray missing to the side",
			rayOrigin:    NewVec3(5, 0, -5),
			rayDirection: NewVec3(0, 0, 1),
			expectHit:    false,
		},
		{
			name:         "diagonal hit",
			rayOrigin:    NewVec3(-5, -5, -5),
			rayDirection: NewVec3(1, 1, 1),
			expectHit:    true,
		},
		{
			name:         "ray starting inside",
			rayOrigin:    NewVec3(0, 0, 0),
			rayDirection: NewVec3(1, 0, 0),
			expectHit:    true,
		},
		{
			name:         "axis-parallel ray inside the slab",
			rayOrigin:    NewVec3(0.5, 0.5, -5),
			rayDirection: NewVec3(0, 0, 1),
			expectHit:    true,
		},
		{
			name:         "axis-parallel ray outside the slab",
			rayOrigin:    NewVec3(2, 0.5, -5),
			rayDirection: NewVec3(0, 0, 1),
			expectHit:    false,
		},
		{
			name:         "negative direction components",
			rayOrigin:    NewVec3(5, 5, 5),
			rayDirection: NewVec3(-1, -1, -1),
			expectHit:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := NewRay(tt.rayOrigin, tt.rayDirection, 0)
			if got := box.Hit(ray, 0.001, 1000.0); got != tt.expectHit {
				t.Errorf("Expected hit=%t, got %t", tt.expectHit, got)
			}
		})
	}
}

func TestAABB_Hit_RespectsRange(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1), 0)

	// The box spans t in [4, 6] along this ray
	if box.Hit(ray, 0.001, 3.0) {
		t.Error("Expected miss when tMax stops short of the box")
	}
	if !box.Hit(ray, 0.001, 5.0) {
		t.Error("Expected hit when the range reaches into the box")
	}
	if box.Hit(ray, 7.0, 1000.0) {
		t.Error("Expected miss when tMin starts past the box")
	}
}

func TestAABB_Union(t *testing.T) {
	a := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(0, 0, 0), NewVec3(3, 2, 1))

	union := a.Union(b)

	if !union.IsValid() {
		t.Fatal("Union produced an invalid box")
	}
	for _, p := range []Vec3{a.Min, a.Max, b.Min, b.Max} {
		if !union.Contains(p) {
			t.Errorf("Union does not contain corner %v", p)
		}
	}
	expectedMin := NewVec3(-1, -1, -1)
	expectedMax := NewVec3(3, 2, 1)
	if union.Min != expectedMin || union.Max != expectedMax {
		t.Errorf("Expected union [%v, %v], got [%v, %v]", expectedMin, expectedMax, union.Min, union.Max)
	}
}

func TestAABB_Union_Commutes(t *testing.T) {
	a := NewAABB(NewVec3(-2, 0, 1), NewVec3(0, 4, 2))
	b := NewAABB(NewVec3(-1, -3, 0), NewVec3(5, 1, 3))

	ab := a.Union(b)
	ba := b.Union(a)
	if ab != ba {
		t.Errorf("Union is not commutative: %v vs %v", ab, ba)
	}
}
