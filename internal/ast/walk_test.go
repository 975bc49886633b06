package ast

import (
	"slices"
	"testing"

	"cedar/internal/source"
)

// buildSample returns a small tree:
//
//	file
//	├── fn
//	│   ├── param
//	│   └── block
//	│       ├── let
//	│       └── return
//	└── let
func buildSample(t *testing.T) (*Tree, NodeID) {
	t.Helper()
	tree := NewTree(0)
	file := tree.New(KindFile, source.Span{})
	fn := tree.New(KindFnDecl, source.Span{})
	param := tree.New(KindParamDecl, source.Span{})
	block := tree.New(KindBlock, source.Span{})
	letInner := tree.New(KindLetDecl, source.Span{})
	ret := tree.New(KindReturn, source.Span{})
	letOuter := tree.New(KindLetDecl, source.Span{})

	tree.AddChild(file, fn)
	tree.AddChild(fn, param)
	tree.AddChild(fn, block)
	tree.AddChild(block, letInner)
	tree.AddChild(block, ret)
	tree.AddChild(file, letOuter)
	return tree, file
}

func TestWalkVisitsEveryNodeOnce(t *testing.T) {
	tree, root := buildSample(t)

	var pre, post []NodeID
	v := NewVisitor(Hooks{
		Enter: func(_ *Tree, id NodeID) bool {
			pre = append(pre, id)
			return true
		},
		Leave: func(_ *Tree, id NodeID) {
			post = append(post, id)
		},
	})
	Walk(tree, root, v)

	if len(pre) != tree.Len() || len(post) != tree.Len() {
		t.Fatalf("visited %d pre / %d post, want %d each", len(pre), len(post), tree.Len())
	}
	// Every node's post-visit comes after all of its children's post-visits.
	postIndex := make(map[NodeID]int, len(post))
	for i, id := range post {
		postIndex[id] = i
	}
	for _, id := range pre {
		for _, child := range tree.Children(id) {
			if postIndex[child] > postIndex[id] {
				t.Fatalf("child %v left after parent %v", child, id)
			}
		}
	}
}

func TestWalkSkipChildrenStillLeaves(t *testing.T) {
	tree, root := buildSample(t)

	var left []NodeID
	v := NewVisitor(Hooks{
		Leave: func(_ *Tree, id NodeID) { left = append(left, id) },
	})
	v.On(KindFnDecl, Hooks{
		Enter: func(_ *Tree, _ NodeID) bool { return false },
		Leave: func(_ *Tree, id NodeID) { left = append(left, id) },
	})
	Walk(tree, root, v)

	// fn's subtree (param, block, let, return) is skipped; fn itself still leaves.
	if len(left) != 3 {
		t.Fatalf("expected file, fn and outer let to leave, got %d nodes", len(left))
	}
	fn := FindFirst(tree, root, KindFnDecl)
	if !slices.Contains(left, fn) {
		t.Fatalf("skipped node must still run its leave hook")
	}
}

func TestKindDispatchFallsBack(t *testing.T) {
	tree, root := buildSample(t)

	var specific, generic int
	v := NewVisitor(Hooks{
		Enter: func(_ *Tree, _ NodeID) bool {
			generic++
			return true
		},
	})
	v.On(KindLetDecl, Hooks{
		Enter: func(_ *Tree, _ NodeID) bool {
			specific++
			return true
		},
	})
	Walk(tree, root, v)

	if specific != 2 {
		t.Fatalf("expected 2 let nodes via the specific hook, got %d", specific)
	}
	if specific+generic != tree.Len() {
		t.Fatalf("fallback missed nodes: %d specific + %d generic != %d", specific, generic, tree.Len())
	}
}

func TestInspectMatchesWalkOrder(t *testing.T) {
	tree, root := buildSample(t)

	var walkPre, walkPost []NodeID
	Walk(tree, root, NewVisitor(Hooks{
		Enter: func(_ *Tree, id NodeID) bool {
			walkPre = append(walkPre, id)
			return true
		},
		Leave: func(_ *Tree, id NodeID) { walkPost = append(walkPost, id) },
	}))

	var inspectPre, inspectPost []NodeID
	Inspect(tree, root, func(id NodeID) bool {
		inspectPre = append(inspectPre, id)
		return true
	}, func(id NodeID) {
		inspectPost = append(inspectPost, id)
	})

	if !slices.Equal(walkPre, inspectPre) {
		t.Fatalf("pre-order differs:\nwalk    %v\ninspect %v", walkPre, inspectPre)
	}
	if !slices.Equal(walkPost, inspectPost) {
		t.Fatalf("post-order differs:\nwalk    %v\ninspect %v", walkPost, inspectPost)
	}
}

func TestCollectKindAndFindFirst(t *testing.T) {
	tree, root := buildSample(t)

	lets := CollectKind(tree, root, KindLetDecl)
	if len(lets) != 2 {
		t.Fatalf("expected 2 lets, got %d", len(lets))
	}
	first := FindFirst(tree, root, KindLetDecl)
	if first != lets[0] {
		t.Fatalf("FindFirst disagrees with CollectKind order")
	}
	if FindFirst(tree, root, KindWhile) != NoNodeID {
		t.Fatalf("missing kind must yield NoNodeID")
	}
}

func TestAncestor(t *testing.T) {
	tree, root := buildSample(t)
	ret := FindFirst(tree, root, KindReturn)
	if got := Ancestor(tree, ret, KindFnDecl); got != FindFirst(tree, root, KindFnDecl) {
		t.Fatalf("ancestor lookup failed: %v", got)
	}
	if Ancestor(tree, root, KindFnDecl) != NoNodeID {
		t.Fatalf("root has no ancestors")
	}
}
