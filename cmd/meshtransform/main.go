package main

import (
	"fmt"
	stdmath "math"
	"os"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/spf13/cobra"

	"game-math/math"
)

var (
	translateFlag []float32
	rotateFlag    []float32
	scaleFlag     []float32
)

func main() {
	root := &cobra.Command{
		Use:   "meshtransform <file.gltf|file.glb>",
		Short: "Batch-transform glTF mesh vertices and report the resulting bounds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(args[0])
		},
	}
	root.Flags().Float32SliceVar(&translateFlag, "translate", []float32{0, 0, 0}, "translation x,y,z")
	root.Flags().Float32SliceVar(&rotateFlag, "rotate", []float32{0, 0, 0}, "euler rotation in degrees x,y,z")
	root.Flags().Float32SliceVar(&scaleFlag, "scale", []float32{1, 1, 1}, "scale x,y,z")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(path string) error {
	translate, err := vec3Flag(translateFlag, "translate")
	if err != nil {
		return err
	}
	rotate, err := vec3Flag(rotateFlag, "rotate")
	if err != nil {
		return err
	}
	scale, err := vec3Flag(scaleFlag, "scale")
	if err != nil {
		return err
	}

	m := math.Mat4TRS(translate, rotate.Mul(stdmath.Pi/180), scale)

	doc, err := gltf.Open(path)
	if err != nil {
		return fmt.Errorf("gltf open %q: %w", path, err)
	}

	for mi, mesh := range doc.Meshes {
		name := mesh.Name
		if name == "" {
			name = fmt.Sprintf("mesh_%d", mi)
		}
		for pi, prim := range mesh.Primitives {
			if err := reportPrimitive(doc, name, pi, *prim, m); err != nil {
				return err
			}
		}
	}
	return nil
}

func vec3Flag(values []float32, name string) (math.Vec3, error) {
	if len(values) != 3 {
		return math.Vec3Zero, fmt.Errorf("--%s needs exactly 3 components, got %d", name, len(values))
	}
	return math.NewVec3(values[0], values[1], values[2]), nil
}

func reportPrimitive(doc *gltf.Document, meshName string, primIdx int, prim gltf.Primitive, m math.Mat4) error {
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil
	}
	raw, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("%s primitive %d positions: %w", meshName, primIdx, err)
	}
	if len(raw) == 0 {
		return nil
	}

	positions := make([]math.Vec3, len(raw))
	for i, p := range raw {
		positions[i] = math.Vec3{X: p[0], Y: p[1], Z: p[2]}
	}
	transformed := make([]math.Vec3, len(positions))
	if err := math.Vec3TransformSlice(m, positions, transformed); err != nil {
		return fmt.Errorf("%s primitive %d transform: %w", meshName, primIdx, err)
	}

	lo, hi := transformed[0], transformed[0]
	for _, v := range transformed[1:] {
		lo = lo.Min(v)
		hi = hi.Max(v)
	}
	fmt.Printf("%s primitive %d: %d vertices, bounds min (%.3f %.3f %.3f) max (%.3f %.3f %.3f)\n",
		meshName, primIdx, len(transformed), lo.X, lo.Y, lo.Z, hi.X, hi.Y, hi.Z)

	if idx, ok := prim.Attributes["NORMAL"]; ok {
		rawN, err := modeler.ReadNormal(doc, doc.Accessors[idx], nil)
		if err != nil {
			return fmt.Errorf("%s primitive %d normals: %w", meshName, primIdx, err)
		}
		normals := make([]math.Vec3, len(rawN))
		for i, n := range rawN {
			normals[i] = math.Vec3{X: n[0], Y: n[1], Z: n[2]}
		}
		out := make([]math.Vec3, len(normals))
		if err := math.Vec3TransformNormalSlice(m, normals, out); err != nil {
			return fmt.Errorf("%s primitive %d normal transform: %w", meshName, primIdx, err)
		}
		skewed := 0
		for _, n := range out {
			if stdmath.Abs(float64(n.Length()-1)) > 1e-3 {
				skewed++
			}
		}
		if skewed > 0 {
			fmt.Printf("%s primitive %d: %d of %d normals need renormalization after this transform\n",
				meshName, primIdx, skewed, len(out))
		}
	}
	return nil
}
