package chain

// Size число узлов цепочки начиная с head.
func Size[T any](head *Node[T]) int {
	var count int
	for n := head; n != nil; n = n.next {
		count++
	}

	return count
}
