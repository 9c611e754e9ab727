package chain

// Node узел двусвязной цепочки.
// Данные не валидируются здесь: решение о допустимости значения принимает
// контейнер, поэтому Data открыто.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type Node[T any] struct {
	prev *Node[T]
	next *Node[T]

	Data T
}

// New конструктор изолированного узла с нулевым значением.
func New[T any]() *Node[T] {
	return &Node[T]{}
}

// NewValue конструктор изолированного узла с данным значением.
func NewValue[T any](v T) *Node[T] {
	return &Node[T]{
		Data: v,
	}
}

// Next следующий узел цепочки или nil для хвоста.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev предыдущий узел цепочки или nil для головы.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// release отвязка узла от соседей и сброс данных, дальше им займётся GC.
func (n *Node[T]) release() {
	var zero T
	n.prev = nil
	n.next = nil
	n.Data = zero
}
