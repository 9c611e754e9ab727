package chain

// AssignStats статистика работы Assign.
type AssignStats struct {
	// Reused число узлов приёмника, в которые были записаны новые значения.
	Reused int
	// Allocated число созданных узлов.
	Allocated int
	// Released число освобождённых узлов приёмника.
	Released int
}

// Assign запись значений цепочки src в цепочку *dst с повторным
// использованием уже имеющихся в ней узлов.
// После вызова *dst содержит те же значения что и src в том же порядке.
// Цепочки *dst и src не должны иметь общих узлов.
func Assign[T any](dst **Node[T], src *Node[T]) AssignStats {
	var stats AssignStats

	var last *Node[T]
	d := *dst
	s := src
	for d != nil && s != nil {
		d.Data = s.Data
		last = d
		d = d.next
		s = s.next
		stats.Reused++
	}

	if d != nil {
		// Приёмник длиннее: отрезаем хвост.
		if last != nil {
			last.next = nil
			d.prev = nil
		} else {
			*dst = nil
		}
		stats.Released = Clear(&d)
		return stats
	}

	for ; s != nil; s = s.next {
		last = InsertAfter(last, s.Data)
		if *dst == nil {
			*dst = last
		}
		stats.Allocated++
	}

	return stats
}
