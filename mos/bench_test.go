package mos_test

import (
	"testing"

	"github.com/pitchgrid-io/scalatrix/mos"
)

func BenchmarkAdjustParams(b *testing.B) {
	m, err := mos.New(5, 2, 1, 1.0, 0.585)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := m.AdjustParams(5, 2, 1, 1.0, 0.585); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerateScale(b *testing.B) {
	m, err := mos.New(5, 2, 1, 1.0, 0.585)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.GenerateScale(261.63, 128, 60); err != nil {
			b.Fatal(err)
		}
	}
}
