/*
Package sdfield implements an algebra of 2D signed distance fields.

A field maps a point of the plane to a scalar whose sign tells whether the
point lies inside (negative) or outside (positive) a shape and whose
magnitude approximates the distance to the shape's boundary. Primitive
shapes live in package form2. Fields are combined with the boolean
operators Union2D, Intersect2D, Difference2D and Not2D, moved with
Translate2D, Rotate2D, Scale2D and Matrix2D and offset with Smooth2D.

Sample evaluates a field over the grid described by a Domain. Package
render turns the sampled Matrix into text or images.

	disc := form2.Circle(5)
	d := sdfield.NewDomain2(-10, -10, 10, 10, 100, 50)
	fmt.Print(render.Text(disc, d, render.FillInside))

Union and intersection are exact for exact distance fields. Scale2D and
Matrix2D break exactness, after them the sign is still correct but the
magnitude is only an approximation of the distance.
*/
package sdfield
