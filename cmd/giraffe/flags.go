package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sigvaldm/GirafFE/pkg/geometry"
)

// parseVec3 parses "x,y,z" into a vector
func parseVec3(s string) (geometry.Vector3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return geometry.Vector3{}, fmt.Errorf("expected x,y,z but got %q", s)
	}
	var coords [3]float64
	for i, p := range parts {
		c, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("bad coordinate %q in %q", p, s)
		}
		coords[i] = c
	}
	return geometry.NewVector3(coords[0], coords[1], coords[2]), nil
}

// parsePlane parses "px,py,pz:nx,ny,nz" into a cutting plane
func parsePlane(s string) (geometry.Plane, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return geometry.Plane{}, fmt.Errorf("expected point:normal but got %q", s)
	}
	point, err := parseVec3(parts[0])
	if err != nil {
		return geometry.Plane{}, err
	}
	normal, err := parseVec3(parts[1])
	if err != nil {
		return geometry.Plane{}, err
	}
	if normal.Length() < geometry.Epsilon {
		return geometry.Plane{}, fmt.Errorf("plane %q has a zero normal", s)
	}
	return geometry.NewPlane(point, normal), nil
}

// parsePlanes parses all --plane flag values
func parsePlanes(specs []string) ([]geometry.Plane, error) {
	planes := make([]geometry.Plane, 0, len(specs))
	for _, s := range specs {
		plane, err := parsePlane(s)
		if err != nil {
			return nil, err
		}
		planes = append(planes, plane)
	}
	return planes, nil
}

// formatVector formats a 3D vector for output
func formatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
