// Package aviary reads X/Twitter personal data archives into strongly
// typed values, and re-encodes them faithfully.
//
// An archive is a zip file whose data/ directory holds one JavaScript file
// per record type. Each file is a single assignment ("window.YTD.tweets
// .part0 = [...]") whose right-hand side is JSON. Aviary strips the
// assignment, decodes the JSON through the codec layer, and guarantees
// that re-encoding a decoded record reproduces the source text.
//
//	a, err := aviary.Open("twitter-2023-08-12.zip")
//	if err != nil {
//		...
//	}
//	defer a.Close()
//
//	tweets, err := a.Tweets()
//	for _, obj := range tweets {
//		fmt.Println(obj.Tweet.CreatedAt, obj.Tweet.FullText)
//	}
//
// The codec subpackage holds the reusable conversions (fixed date/time
// layouts, number-like strings, paired indices, envelopes, untagged variant
// lists); the records subpackage holds the per-file record shapes. Decoding
// is strict: a record that does not match its declared shape fails with a
// typed codec error rather than being skipped or coerced.
package aviary
