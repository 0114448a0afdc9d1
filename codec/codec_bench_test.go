package codec

import (
	"testing"
)

type benchDoc struct {
	CreatedAt CreatedAt    `json:"created_at"`
	Count     NumberString `json:"favorite_count"`
	Span      Indices      `json:"indices"`
	Text      string       `json:"full_text"`
}

var benchSrc = []byte(`{"created_at":"Sat Aug 12 16:10:37 +0000 2023","favorite_count":"68419","indices":["68","419"],"full_text":"hello world"}`)

func BenchmarkCodec_Unmarshal(b *testing.B) {
	for _, c := range []Codec{JSON{}, GoJSON{}} {
		b.Run(c.Name(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(benchSrc)))

			var d benchDoc
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := c.Unmarshal(benchSrc, &d); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCodec_Marshal(b *testing.B) {
	var d benchDoc
	if err := (JSON{}).Unmarshal(benchSrc, &d); err != nil {
		b.Fatal(err)
	}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		b.Run(c.Name(), func(b *testing.B) {
			b.ReportAllocs()

			var sink []byte
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				out, err := c.Marshal(d)
				if err != nil {
					b.Fatal(err)
				}
				sink = out
			}
			_ = sink
		})
	}
}
