package render

// View is a square window onto a lattice display buffer, in buffer
// coordinates (0 is the -R edge).
type View struct {
	X0, Y0 int
	Size   int
}

// FullView covers a whole lattice of half-width radius.
func FullView(radius int) View {
	return View{Size: 2*radius + 1}
}

// ZoomView frames the spawn circle, clamped to the lattice.
func ZoomView(radius, spawnRadius int) View {
	half := spawnRadius + 1
	if half > radius {
		return FullView(radius)
	}
	return View{X0: radius - half, Y0: radius - half, Size: 2*half + 1}
}
