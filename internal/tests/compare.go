package tests

// Compare scores an outcome against the ground truth.
//
// The expected value is looked up by the exact (regex, string) pair; a
// case-level outcome uses the empty string key. An absent entry renders as
// Missing and is compared like any other value, so it fails unless the
// actual output is literally "MISSING". Equality is exact.
func Compare(o Outcome, gt GroundTruth) Record {
	expected, found := gt.Lookup(o.Regex, o.String)
	if !found {
		expected = Missing
	}

	status := StatusFail
	if expected == o.Actual {
		status = StatusPass
	}

	return Record{
		Regex:    o.Regex,
		String:   o.String,
		Expected: expected,
		Actual:   o.Actual,
		Status:   status,
		Found:    found,
	}
}
