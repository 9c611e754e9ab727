package chain

import (
	"bytes"
	stderrs "errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirkon/errors"

	"github.com/sirkon/nodechain/internal/extmocks"
	"github.com/sirkon/nodechain/internal/tlog"
)

func TestDisplay(t *testing.T) {
	tests := []struct {
		name string
		head *Node[int]
		opts []DisplayOption
		want string
	}{
		{
			name: "empty",
			head: nil,
			want: "",
		},
		{
			name: "single",
			head: NewValue(1),
			want: "1",
		},
		{
			name: "default",
			head: FromValues(1, 2, 3),
			want: "1, 2, 3",
		},
		{
			name: "custom separator",
			head: FromValues(1, 2, 3),
			opts: []DisplayOption{DisplaySeparator(",")},
			want: "1,2,3",
		},
		{
			name: "brackets",
			head: FromValues(1, 2, 3),
			opts: []DisplayOption{DisplayBrackets("{ ", " }")},
			want: "{ 1, 2, 3 }",
		},
		{
			name: "empty with brackets",
			head: nil,
			opts: []DisplayOption{DisplayBrackets("[", "]")},
			want: "[]",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Display(&buf, tt.head, tt.opts...); err != nil {
				tlog.Error(t, errors.Wrap(err, "display chain"))
				return
			}

			if buf.String() != tt.want {
				t.Errorf("%q expected, got %q", tt.want, buf.String())
			}
		})
	}

	t.Run("write failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := extmocks.NewWriterMock(ctrl)
		experr := stderrs.New("write failed")
		gomock.InOrder(
			m.EXPECT().Write([]byte("1")).Return(1, nil),
			m.EXPECT().Write([]byte(", ")).Return(2, nil),
			m.EXPECT().Write([]byte("2")).Return(0, experr),
		)

		head := FromValues(1, 2, 3)
		err := Display(m, head)
		if err == nil {
			t.Error("display error expected")
			return
		}
		if !errors.Is(err, experr) {
			tlog.Error(t, errors.Wrap(err, "unexpected error"))
			return
		}
		tlog.Log(t, errors.Wrap(err, "expected error"))

		if Size(head) != 3 {
			t.Error("display must not mutate chain")
		}
	})
}

func TestScenario(t *testing.T) {
	head := NewValue(1)
	cur := head
	for _, v := range []int{2, 3} {
		cur = Insert(cur, v, true)
	}

	if Size(head) != 3 {
		t.Errorf("size 3 expected, got %d", Size(head))
	}

	dup := Copy(head)
	Assign(&dup, FromValues(4, 5))
	if Size(dup) != 2 || !Equal(dup, FromValues(4, 5)) {
		t.Errorf("[4, 5] expected, got %v", Values(dup))
	}

	var buf bytes.Buffer
	if err := Display(&buf, head); err != nil {
		tlog.Error(t, errors.Wrap(err, "display original chain"))
		return
	}
	if buf.String() != "1, 2, 3" {
		t.Errorf("unexpected rendering %q", buf.String())
	}
}
