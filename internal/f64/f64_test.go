// Copyright ©2026 The ellalgo-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package f64

import "testing"

func TestDotUnitary(t *testing.T) {
	tests := []struct {
		x, y []float64
		want float64
	}{
		{x: []float64{1, 2, 3}, y: []float64{4, 5, 6}, want: 32},
		{x: []float64{}, y: []float64{}, want: 0},
	}
	for _, test := range tests {
		if got := DotUnitary(test.x, test.y); got != test.want {
			t.Errorf("DotUnitary(%v, %v) = %v, want %v", test.x, test.y, got, test.want)
		}
	}
}

func TestScaleUnitary(t *testing.T) {
	x := []float64{1, 2, 3}
	ScaleUnitary(2, x)
	want := []float64{2, 4, 6}
	for i, v := range want {
		if x[i] != v {
			t.Errorf("ScaleUnitary: x[%d] = %v, want %v", i, x[i], v)
		}
	}
}

func TestAxpyUnitary(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{10, 10, 10}
	AxpyUnitary(2, x, y)
	want := []float64{12, 14, 16}
	for i, v := range want {
		if y[i] != v {
			t.Errorf("AxpyUnitary: y[%d] = %v, want %v", i, y[i], v)
		}
	}
}

func TestGerSymmetricUpperOnly(t *testing.T) {
	n := 2
	a := make([]float64, n*n)
	x := []float64{1, 2}
	Ger(n, 1, x, a, n)
	// upper triangle + diagonal: a[0][0]=1, a[0][1]=2, a[1][1]=4; a[1][0] untouched.
	want := []float64{1, 2, 0, 4}
	for i, v := range want {
		if a[i] != v {
			t.Errorf("Ger: a[%d] = %v, want %v", i, a[i], v)
		}
	}
}

func TestL2NormUnitary(t *testing.T) {
	if got, want := L2NormUnitary([]float64{3, 4}), 5.0; got != want {
		t.Errorf("L2NormUnitary = %v, want %v", got, want)
	}
}
