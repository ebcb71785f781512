package model

// Thread is the comment forest of one post, kept as a flat arena plus
// id indexes. Comments never point at each other directly.
type Thread struct {
	comments []Comment
	index    map[int64]int
	children map[int64][]int64
	roots    []int64
}

// BuildThread indexes comments in the order given. A comment whose parent is
// not in the input is treated as a root.
func BuildThread(comments []Comment) *Thread {
	t := &Thread{
		comments: comments,
		index:    make(map[int64]int, len(comments)),
		children: make(map[int64][]int64),
	}
	for i, c := range comments {
		t.index[c.ID] = i
	}
	for _, c := range comments {
		if c.ParentID != nil {
			if _, ok := t.index[*c.ParentID]; ok {
				t.children[*c.ParentID] = append(t.children[*c.ParentID], c.ID)
				continue
			}
		}
		t.roots = append(t.roots, c.ID)
	}
	return t
}

func (t *Thread) Len() int {
	return len(t.comments)
}

func (t *Thread) Get(id int64) (Comment, bool) {
	i, ok := t.index[id]
	if !ok {
		return Comment{}, false
	}
	return t.comments[i], true
}

func (t *Thread) Roots() []Comment {
	return t.collect(t.roots)
}

func (t *Thread) Children(id int64) []Comment {
	return t.collect(t.children[id])
}

// Walk visits the forest depth-first, parents before their replies. Returning
// false from fn skips the replies of that comment.
func (t *Thread) Walk(fn func(c Comment, depth int) bool) {
	type frame struct {
		id    int64
		depth int
	}

	stack := make([]frame, 0, len(t.roots))
	for i := len(t.roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{id: t.roots[i]})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(t.comments[t.index[f.id]], f.depth) {
			continue
		}
		kids := t.children[f.id]
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, frame{id: kids[i], depth: f.depth + 1})
		}
	}
}

func (t *Thread) collect(ids []int64) []Comment {
	if len(ids) == 0 {
		return nil
	}
	out := make([]Comment, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.comments[t.index[id]])
	}
	return out
}
