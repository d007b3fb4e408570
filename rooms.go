package main

func createRoom(name, clue string) *Room {
	return &Room{Name: name, Clue: clue}
}

func isDeadEnd(r *Room) bool {
	return r.Left == nil && r.Right == nil
}

func countRooms(root *Room) int {
	if root == nil {
		return 0
	}
	return 1 + countRooms(root.Left) + countRooms(root.Right)
}

// releaseRooms detaches every room below root, children before parent, and
// returns how many rooms were released. A nil root releases nothing.
func releaseRooms(root *Room) int {
	if root == nil {
		return 0
	}
	n := releaseRooms(root.Left) + releaseRooms(root.Right)
	root.Left = nil
	root.Right = nil
	return n + 1
}
