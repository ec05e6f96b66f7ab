package employee

// Reduce は現在のコレクションとアクションから次のコレクションを計算します。
// 入力スライスは変更せず、要素の順序を保ちます。未知のアクションでは入力をそのまま返します。
func Reduce(collection []Employee, action Action) []Employee {
	switch a := action.(type) {
	case AddAction:
		next := make([]Employee, 0, len(collection)+1)
		next = append(next, collection...)
		return append(next, a.Employee)
	case UpdateAction:
		next := make([]Employee, len(collection))
		for i, e := range collection {
			if e.ID == a.ID {
				e = a.Patch.Apply(e)
			}
			next[i] = e
		}
		return next
	case DeleteAction:
		next := make([]Employee, 0, len(collection))
		for _, e := range collection {
			if e.ID != a.ID {
				next = append(next, e)
			}
		}
		return next
	default:
		return collection
	}
}
