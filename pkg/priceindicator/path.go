package priceindicator

import (
	"strconv"
	"strings"
)

type PathOp byte

const (
	PathOpMoveTo PathOp = 'M'
	PathOpLineTo PathOp = 'L'
	PathOpClose  PathOp = 'Z'
)

type PathCommand struct {
	Op   PathOp
	X, Y float64
}

// Path is an ordered list of path commands.
type Path []PathCommand

func (p Path) String() string {
	var sb strings.Builder
	for i, cmd := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}

		sb.WriteByte(byte(cmd.Op))
		if cmd.Op == PathOpClose {
			continue
		}

		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatFloat(cmd.X, 'f', -1, 64))
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatFloat(cmd.Y, 'f', -1, 64))
	}
	return sb.String()
}

// flagPath builds the pointer-flag outline of the label box. The tip sits
// labelTipOffset px left of x and the body spans (width+4, height) around y.
func flagPath(x, y, width, height float64) Path {
	return Path{
		{Op: PathOpMoveTo, X: x - labelTipOffset, Y: y},
		{Op: PathOpLineTo, X: x, Y: y - (height / 2) - 2},
		{Op: PathOpLineTo, X: x + width + 4, Y: y - (height / 2) - 2},
		{Op: PathOpLineTo, X: x + width + 4, Y: y + (height / 2)},
		{Op: PathOpLineTo, X: x, Y: y + (height / 2)},
		{Op: PathOpClose},
	}
}

// connectorPath joins the line anchor with the tip of the flag.
func connectorPath(fromX, x, y float64) Path {
	return Path{
		{Op: PathOpMoveTo, X: fromX, Y: y},
		{Op: PathOpLineTo, X: x - labelTipOffset, Y: y},
	}
}
