// Package raytracer is the numeric and image-output foundation of a ray
// tracer: homogeneous tuples, small square matrices, real-valued colors and
// a framebuffer that serializes to plain-text PPM.
//
// What is in the box?
//
//	• Tuples: points (w=1) and vectors (w=0) with the usual arithmetic,
//	  dot/cross products and normalization
//	• Matrices: order 2, 3 and 4 on a fixed store, transpose, products and
//	  application to tuples
//	• Colors: unbounded RGB with saturating 8-bit quantization
//	• Canvas: a W×H grid of colors that is also an image.Image
//	• PPM: a byte-exact P3 encoder, a lenient decoder and a file shim
//
// Everything is organized under small subpackages:
//
//	approx/    - absolute-tolerance float equality shared by all types
//	tuple/     - Tuple, Point, Vector
//	matrix/    - Matrix, Identity, Transpose, Mul, Apply
//	color/     - Color, Quantized
//	canvas/    - Canvas, image.Image adapter, nearest-neighbour Scale
//	ppm/       - Encode, Marshal, Decode, Save
//	outfile/   - random file naming and output directory policy
//	imagefile/ - PPM, TIFF and BMP export
//	demo/      - reference, projectile and gradient scenes
//	cmd/raytracer - command-line renderer for the demo scenes
//
// Quick example, the whole pipeline in four lines:
//
//	c, _ := canvas.New(5, 3)
//	_ = c.WritePixel(0, 0, color.New(1.5, 0, 0))
//	path, err := ppm.Save(c)
//	fmt.Println(path, err) // ppm/Xq3...9.ppm <nil>
//
// Not here yet: intersections, shading, cameras and scene composition. They
// are built on top of these packages.
package raytracer
