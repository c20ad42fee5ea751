package controller

// Message types.
type testsMsg struct {
	items  []testItem
	files  int
	failed int
}

type concurrencyMsg struct {
	threads    int
	shardIndex int
	shards     int
}

// List item types.
type testItem struct {
	file      string
	name      string
	signature string
	run       bool
}

func (t testItem) FilterValue() string {
	return t.name + " " + t.file
}

func newTestsMsg(sum summary) testsMsg {
	items := make([]testItem, 0, len(sum.rows))
	for _, row := range sum.rows {
		items = append(items, testItem{file: row.file, name: row.name, signature: row.signature, run: row.run})
	}

	return testsMsg{items: items, files: sum.files, failed: sum.failed}
}
