package layout

import "gioui.org/layout"

type Context = layout.Context
type Dimensions = layout.Dimensions
type Constraints = layout.Constraints
type Flex = layout.Flex
type Alignment = layout.Alignment
type Axis = layout.Axis
type Widget = layout.Widget
type Spacing = layout.Spacing

const SpaceEvenly Spacing = layout.SpaceEvenly

var UniformInset = layout.UniformInset
var Rigid = layout.Rigid
var NewContext = layout.NewContext

const Middle Alignment = layout.Middle

const Center = layout.Center

const (
	Horizontal Axis = layout.Horizontal
	Vertical   Axis = layout.Vertical
)
