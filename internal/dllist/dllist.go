package dllist

import (
	"io"
	"strings"

	"github.com/sirkon/errors"
	"golang.org/x/exp/slices"

	"github.com/sirkon/nodechain/internal/chain"
	"github.com/sirkon/nodechain/internal/logging"
)

const (
	// ErrForeignNode узел не принадлежит списку.
	ErrForeignNode errors.Const = "node does not belong to the list"
)

// New конструктор пустого двусвязного списка.
func New[T any]() *DLList[T] {
	return NewWithLogger[T](logging.Nop())
}

// NewWithLogger конструктор пустого двусвязного списка с данным логгером.
func NewWithLogger[T any](logger logging.Logger) *DLList[T] {
	return &DLList[T]{
		logger: logger,
	}
}

// DLList двусвязный список владеющий цепочкой узлов.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type DLList[T any] struct {
	first  *chain.Node[T]
	last   *chain.Node[T]
	length int

	logger logging.Logger
}

// Push добавление нового значения в конец списка с возвратом созданного узла.
func (l *DLList[T]) Push(v T) *chain.Node[T] {
	n := chain.InsertAfter(l.last, v)
	if l.first == nil {
		l.first = n
	}
	l.last = n
	l.length++

	return n
}

// PushFront добавление нового значения в начало списка с возвратом созданного узла.
func (l *DLList[T]) PushFront(v T) *chain.Node[T] {
	n := chain.InsertBefore(l.first, v)
	if l.last == nil {
		l.last = n
	}
	l.first = n
	l.length++

	return n
}

// DeleteFirst удаление первого элемента списка.
func (l *DLList[T]) DeleteFirst() {
	if l.first == nil {
		l.log().WarningDeleteFromEmpty()
		return
	}

	// Ошибки быть не может: first != nil.
	_ = l.Delete(l.first)
}

// First получение первого элемента списка.
func (l *DLList[T]) First() *chain.Node[T] {
	return l.first
}

// Last получение последнего элемента списка.
func (l *DLList[T]) Last() *chain.Node[T] {
	return l.last
}

// Len длина списка.
func (l *DLList[T]) Len() int {
	return l.length
}

// Delete удаление данного узла из списка.
// Принадлежность узла списку проверяется проходом до головы цепочки, поэтому
// удаление стоит O(n) от позиции узла, в отличие от O(1) у chain.Remove.
func (l *DLList[T]) Delete(n *chain.Node[T]) error {
	if n == nil {
		return errors.Wrap(chain.ErrNilNode, "delete node")
	}

	if chain.Head(n) != l.first {
		return errors.Wrap(ErrForeignNode, "delete node").Int("list-length", l.length)
	}

	first := n == l.first
	last := n == l.last
	next := n.Next()
	prev, err := chain.Remove(n)
	if err != nil {
		return errors.Wrap(err, "remove node from chain")
	}

	if first {
		l.first = next
	}
	if last {
		l.last = prev
	}
	l.length--

	return nil
}

// Clone создание независимой копии списка.
func (l *DLList[T]) Clone() *DLList[T] {
	res := NewWithLogger[T](l.logger)
	res.first = chain.Copy(l.first)
	res.last = chain.Tail(res.first)
	res.length = l.length

	return res
}

// Assign приведение списка к значениям src с переиспользованием имеющихся узлов.
func (l *DLList[T]) Assign(src *DLList[T]) {
	if l == src {
		return
	}

	stats := chain.Assign(&l.first, src.first)
	l.log().DebugAssign(stats.Reused, stats.Allocated, stats.Released)
	l.last = chain.Tail(l.first)
	l.length = src.length
}

// Swap обмен содержимым с other.
func (l *DLList[T]) Swap(other *DLList[T]) {
	chain.Swap(&l.first, &other.first)
	chain.Swap(&l.last, &other.last)
	l.length, other.length = other.length, l.length
}

// Clear удаление всех элементов списка.
func (l *DLList[T]) Clear() {
	released := chain.Clear(&l.first)
	l.log().DebugClear(released)
	l.last = nil
	l.length = 0
}

// Values значения списка в прямом порядке.
func (l *DLList[T]) Values() []T {
	return chain.Values(l.first)
}

// Print вывод значений списка в w.
func (l *DLList[T]) Print(w io.Writer, opts ...chain.DisplayOption) error {
	if err := chain.Display(w, l.first, opts...); err != nil {
		return errors.Wrap(err, "display list").Int("list-length", l.length)
	}

	return nil
}

func (l *DLList[T]) String() string {
	var b strings.Builder
	// strings.Builder не возвращает ошибок записи.
	_ = chain.Display(&b, l.first, chain.DisplayBrackets("[", "]"))
	return b.String()
}

func (l *DLList[T]) log() logging.Logger {
	if l.logger == nil {
		return logging.Nop()
	}

	return l.logger
}

// Equal проверка совпадения значений списков.
func Equal[T comparable](a, b *DLList[T]) bool {
	if a.length != b.length {
		return false
	}

	return slices.Equal(chain.Values(a.first), chain.Values(b.first))
}
