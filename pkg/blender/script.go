// Package blender generates the scene setup script and launches the host
// application with it. The Go side computes everything up front; the emitted
// Python only replays placements and settings against the bpy API, so the
// script stays self-contained and inspectable.
package blender

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/khemadeva/lighttable/pkg/layout"
)

// ScriptName is the file name of the generated script inside the staging
// workspace.
const ScriptName = "scene.py"

// Plane is one asset to import, with its placement baked in. X and Y locate
// the plane's center on the ground plane; Scale is uniform.
type Plane struct {
	Path  string
	X, Y  float64
	Scale float64
}

// SceneOptions toggles the individual scene adjustments. The zero value
// disables everything; use DefaultSceneOptions as the base.
type SceneOptions struct {
	KeepCube      bool // keep the default cube object
	UsePrincipled bool // principled shader instead of emission
	ShowSplash    bool // leave the splash preference untouched

	AdjustResolution bool
	AdjustView       bool
	AdjustCamera     bool
	AdjustLighting   bool

	// SetBackground composites a solid color behind the render.
	SetBackground bool
	Background    Color
}

// DefaultSceneOptions enables every adjustment, mirroring a plain launch.
func DefaultSceneOptions() SceneOptions {
	return SceneOptions{
		AdjustResolution: true,
		AdjustView:       true,
		AdjustCamera:     true,
		AdjustLighting:   true,
		SetBackground:    true,
	}
}

// cameraHeight places the orthographic camera above the ground plane. The
// exact distance is irrelevant for an orthographic projection; it only has
// to clear the planes.
const cameraHeight = 2.0

// Script renders the scene setup Python for the given planes. Fit-derived
// blocks (resolution, view, camera) are omitted entirely when there are no
// planes, leaving the scene untouched beyond the base setup.
func Script(planes []Plane, fit layout.Fit, opts SceneOptions) []byte {
	var buf bytes.Buffer

	emitPrelude(&buf, opts)
	emitPlanes(&buf, planes, opts)

	if len(planes) > 0 {
		if opts.AdjustResolution {
			emitResolution(&buf, fit)
		}
		if opts.AdjustView {
			emitView(&buf, fit)
		}
		if opts.AdjustCamera {
			emitCamera(&buf, fit)
		}
	}
	if opts.AdjustLighting {
		emitLighting(&buf)
	}
	if opts.SetBackground {
		emitCompositor(&buf, opts.Background)
	}

	return buf.Bytes()
}

func emitPrelude(buf *bytes.Buffer, opts SceneOptions) {
	buf.WriteString("# Scene setup generated by lighttable.\n")
	buf.WriteString("import bpy\n\n")
	buf.WriteString("c = bpy.context\n")
	buf.WriteString("d = bpy.data\n")
	buf.WriteString("o = bpy.ops\n\n")

	if !opts.KeepCube {
		buf.WriteString("if \"Cube\" in d.objects:\n")
		buf.WriteString("    d.objects.remove(d.objects[\"Cube\"], do_unlink=True)\n\n")
	}

	buf.WriteString("o.preferences.addon_enable(module=\"io_import_images_as_planes\")\n")
	if !opts.ShowSplash {
		buf.WriteString("c.preferences.view.show_splash = False\n")
	}
	buf.WriteString("\n")
}

func emitPlanes(buf *bytes.Buffer, planes []Plane, opts SceneOptions) {
	shader := "EMISSION"
	if opts.UsePrincipled {
		shader = "PRINCIPLED"
	}

	for _, p := range planes {
		fmt.Fprintf(buf, "o.import_image.to_plane(files=[{\"name\": %s}], directory=\"\", shader=\"%s\", align_axis=\"Z+\", relative=False)\n",
			pyStr(p.Path), shader)
		buf.WriteString("obj = c.object\n")
		fmt.Fprintf(buf, "obj.location = (%s, %s, 0)\n", pyFloat(p.X), pyFloat(p.Y))
		fmt.Fprintf(buf, "obj.scale = (%s, %s, %s)\n\n", pyFloat(p.Scale), pyFloat(p.Scale), pyFloat(p.Scale))
	}
}

func emitResolution(buf *bytes.Buffer, fit layout.Fit) {
	buf.WriteString("r = c.scene.render\n")
	fmt.Fprintf(buf, "r.resolution_x = %d\n", fit.ResX)
	fmt.Fprintf(buf, "r.resolution_y = %d\n\n", fit.ResY)
}

func emitView(buf *bytes.Buffer, fit layout.Fit) {
	buf.WriteString("for area in c.screen.areas:\n")
	buf.WriteString("    if area.type == \"VIEW_3D\":\n")
	buf.WriteString("        space = area.spaces.active\n")
	buf.WriteString("        space.shading.type = \"RENDERED\"\n")
	buf.WriteString("        space.region_3d.view_perspective = \"ORTHO\"\n")
	buf.WriteString("        space.region_3d.view_rotation = (1.0, 0.0, 0.0, 0.0)\n")
	buf.WriteString("        space.region_3d.view_location = (0.0, 0.0, 0.0)\n")
	fmt.Fprintf(buf, "        space.region_3d.view_distance = %s\n\n", pyFloat(fit.ViewDistance))
}

func emitCamera(buf *bytes.Buffer, fit layout.Fit) {
	buf.WriteString("if \"Camera\" in d.objects:\n")
	buf.WriteString("    camera = d.objects[\"Camera\"]\n")
	fmt.Fprintf(buf, "    camera.location = (0, 0, %s)\n", pyFloat(cameraHeight))
	buf.WriteString("    camera.rotation_euler = (0, 0, 0)\n")
	buf.WriteString("    camera.data.type = \"ORTHO\"\n")
	fmt.Fprintf(buf, "    camera.data.ortho_scale = %s\n", pyFloat(fit.OrthoScale))
	buf.WriteString("    camera.hide_set(True)\n\n")
}

// emitLighting switches the color pipeline to Standard and replaces the
// world surface with a zero-strength emission node, so imported planes are
// shown at their native brightness with no environment light added.
func emitLighting(buf *bytes.Buffer) {
	buf.WriteString("c.scene.view_settings.view_transform = \"Standard\"\n\n")
	buf.WriteString("world = d.worlds[\"World\"]\n")
	buf.WriteString("world.use_nodes = True\n")
	buf.WriteString("nodes = world.node_tree.nodes\n")
	buf.WriteString("output = next((n for n in nodes if n.type == \"OUTPUT_WORLD\"), None)\n")
	buf.WriteString("if output is None:\n")
	buf.WriteString("    output = nodes.new(type=\"ShaderNodeOutputWorld\")\n")
	buf.WriteString("for socket in output.inputs:\n")
	buf.WriteString("    for link in socket.links:\n")
	buf.WriteString("        world.node_tree.links.remove(link)\n")
	buf.WriteString("emission = nodes.new(type=\"ShaderNodeEmission\")\n")
	buf.WriteString("emission.inputs[\"Strength\"].default_value = 0\n")
	buf.WriteString("world.node_tree.links.new(emission.outputs[\"Emission\"], output.inputs[\"Surface\"])\n\n")
}

// emitCompositor rebuilds the compositing tree as render layers alpha-over
// a solid background color, with film transparency enabled so the color
// shows through wherever no plane is rendered.
func emitCompositor(buf *bytes.Buffer, bg Color) {
	buf.WriteString("scene = c.scene\n")
	buf.WriteString("scene.render.film_transparent = True\n")
	buf.WriteString("scene.use_nodes = True\n")
	buf.WriteString("tree = scene.node_tree\n")
	buf.WriteString("tree.nodes.clear()\n")
	buf.WriteString("layers = tree.nodes.new(type=\"CompositorNodeRLayers\")\n")
	buf.WriteString("mix = tree.nodes.new(type=\"CompositorNodeAlphaOver\")\n")
	fmt.Fprintf(buf, "mix.inputs[1].default_value = (%s, %s, %s, 1.0)\n",
		pyFloat(bg.R), pyFloat(bg.G), pyFloat(bg.B))
	buf.WriteString("comp = tree.nodes.new(type=\"CompositorNodeComposite\")\n")
	buf.WriteString("tree.links.new(layers.outputs[\"Image\"], mix.inputs[2])\n")
	buf.WriteString("tree.links.new(mix.outputs[\"Image\"], comp.inputs[\"Image\"])\n")
}

// pyStr quotes s as a Python string literal. Go's quoting rules are a
// compatible subset for the escape sequences paths can contain.
func pyStr(s string) string { return strconv.Quote(s) }

// pyFloat formats f in the shortest exact form.
func pyFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
