/*

Integer 2D/3D Vectors

*/

package sdfield

// V2i is a 2D integer vector.
type V2i [2]int

// V3i is a 3D integer vector.
type V3i [3]int

// XY returns the first two components of a.
func (a V3i) XY() V2i {
	return V2i{a[0], a[1]}
}
