package main

// insertClue adds name to the catalog rooted at root and returns the new root.
// Names already present leave the tree unchanged.
func insertClue(root *Clue, name string) *Clue {
	if root == nil {
		return &Clue{Name: name}
	}
	switch {
	case name < root.Name:
		root.Left = insertClue(root.Left, name)
	case name > root.Name:
		root.Right = insertClue(root.Right, name)
	}
	return root
}

func hasClue(root *Clue, name string) bool {
	for root != nil {
		switch {
		case name < root.Name:
			root = root.Left
		case name > root.Name:
			root = root.Right
		default:
			return true
		}
	}
	return false
}

// walkClues calls visit for every name in ascending order.
func walkClues(root *Clue, visit func(name string)) {
	if root == nil {
		return
	}
	walkClues(root.Left, visit)
	visit(root.Name)
	walkClues(root.Right, visit)
}

func listClues(root *Clue) []string {
	var names []string
	walkClues(root, func(name string) {
		names = append(names, name)
	})
	return names
}

func countClues(root *Clue) int {
	if root == nil {
		return 0
	}
	return 1 + countClues(root.Left) + countClues(root.Right)
}

// releaseClues detaches the catalog post-order and returns the number of
// released nodes.
func releaseClues(root *Clue) int {
	if root == nil {
		return 0
	}
	n := releaseClues(root.Left) + releaseClues(root.Right)
	root.Left = nil
	root.Right = nil
	return n + 1
}
