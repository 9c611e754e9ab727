package chain

// Swap обмен цепочками между lhs и rhs, сами узлы не затрагиваются.
func Swap[T any](lhs, rhs **Node[T]) {
	*lhs, *rhs = *rhs, *lhs
}
