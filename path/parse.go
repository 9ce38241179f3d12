// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package path

import (
	"fmt"

	"cogentcore.org/canvas/math32"
	"github.com/tdewolff/parse/v2/strconv"
)

// MustParseSVGPath parses an SVG path data string and panics if it fails.
func MustParseSVGPath(s string) Path {
	p, err := ParseSVGPath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseSVGPath parses an SVG path data string.
func ParseSVGPath(s string) (Path, error) {
	if len(s) == 0 {
		return Path{}, nil
	}

	i := 0
	i += skipCommaWhitespace([]byte(s[i:]))
	if len(s) <= i {
		return Path{}, nil
	}
	if s[i] < 'A' {
		return nil, fmt.Errorf("bad path: path should start with command")
	}

	cmdLens := map[byte]int{
		'M': 2,
		'Z': 0,
		'L': 2,
		'H': 1,
		'V': 1,
		'C': 6,
		'S': 4,
		'Q': 4,
		'T': 2,
		'A': 7,
	}
	f := [7]float32{}

	p := Path{}
	var q, c math32.Vector2
	var p0, p1 math32.Vector2
	prevCmd := byte('z')
	for {
		i += skipCommaWhitespace([]byte(s[i:]))
		if len(s) <= i {
			break
		}

		cmd := prevCmd
		if cmd == 'z' || cmd == 'Z' || !('0' <= s[i] && s[i] <= '9' || s[i] == '.') {
			cmd = s[i]
			i++
			if _, ok := cmdLens[toUpper(cmd)]; !ok {
				return nil, fmt.Errorf("bad path: unknown command '%c' at position %d", cmd, i)
			}
		} else if cmd == 'M' {
			// subsequent coordinate pairs of a moveto are implicit linetos
			cmd = 'L'
		} else if cmd == 'm' {
			cmd = 'l'
		}
		CMD := toUpper(cmd)
		for j := 0; j < cmdLens[CMD]; j++ {
			if CMD == 'A' && (j == 3 || j == 4) {
				// parse largeArc and sweep booleans for A command
				i += skipCommaWhitespace([]byte(s[i:]))
				if i < len(s) && s[i] == '1' {
					f[j] = 1.0
				} else if i < len(s) && s[i] == '0' {
					f[j] = 0.0
				} else {
					return nil, fmt.Errorf("bad path: largeArc and sweep flags should be 0 or 1 in command '%c' at position %d", cmd, i+1)
				}
				i++
				continue
			}
			i += skipCommaWhitespace([]byte(s[i:]))
			num, n := strconv.ParseFloat([]byte(s[i:]))
			if n == 0 {
				return nil, fmt.Errorf("bad path: sets of %d numbers should follow command '%c' at position %d", cmdLens[CMD], cmd, i+1)
			}
			f[j] = float32(num)
			i += n
		}

		switch cmd {
		case 'M', 'm':
			p1 = math32.Vec2(f[0], f[1])
			if cmd == 'm' {
				p1 = p1.Add(p0)
			}
			p.MoveTo(p1.X, p1.Y)
		case 'Z', 'z':
			p1 = p.StartPos()
			p.Close()
		case 'L', 'l':
			p1 = math32.Vec2(f[0], f[1])
			if cmd == 'l' {
				p1 = p1.Add(p0)
			}
			p.LineTo(p1.X, p1.Y)
		case 'H', 'h':
			p1.X = f[0]
			if cmd == 'h' {
				p1.X += p0.X
			}
			p.LineTo(p1.X, p1.Y)
		case 'V', 'v':
			p1.Y = f[0]
			if cmd == 'v' {
				p1.Y += p0.Y
			}
			p.LineTo(p1.X, p1.Y)
		case 'C', 'c':
			cp1 := math32.Vec2(f[0], f[1])
			cp2 := math32.Vec2(f[2], f[3])
			p1 = math32.Vec2(f[4], f[5])
			if cmd == 'c' {
				cp1 = cp1.Add(p0)
				cp2 = cp2.Add(p0)
				p1 = p1.Add(p0)
			}
			p.CubeTo(cp1.X, cp1.Y, cp2.X, cp2.Y, p1.X, p1.Y)
			c = cp2
		case 'S', 's':
			cp1 := p0
			cp2 := math32.Vec2(f[0], f[1])
			p1 = math32.Vec2(f[2], f[3])
			if cmd == 's' {
				cp2 = cp2.Add(p0)
				p1 = p1.Add(p0)
			}
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				cp1 = p0.MulScalar(2.0).Sub(c)
			}
			p.CubeTo(cp1.X, cp1.Y, cp2.X, cp2.Y, p1.X, p1.Y)
			c = cp2
		case 'Q', 'q':
			cp := math32.Vec2(f[0], f[1])
			p1 = math32.Vec2(f[2], f[3])
			if cmd == 'q' {
				cp = cp.Add(p0)
				p1 = p1.Add(p0)
			}
			p.QuadTo(cp.X, cp.Y, p1.X, p1.Y)
			q = cp
		case 'T', 't':
			cp := p0
			p1 = math32.Vec2(f[0], f[1])
			if cmd == 't' {
				p1 = p1.Add(p0)
			}
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				cp = p0.MulScalar(2.0).Sub(q)
			}
			p.QuadTo(cp.X, cp.Y, p1.X, p1.Y)
			q = cp
		case 'A', 'a':
			rx := f[0]
			ry := f[1]
			rot := f[2]
			large := f[3] == 1.0
			sweep := f[4] == 1.0
			p1 = math32.Vec2(f[5], f[6])
			if cmd == 'a' {
				p1 = p1.Add(p0)
			}
			p.ArcToDeg(rx, ry, rot, large, sweep, p1.X, p1.Y)
		}
		prevCmd = cmd
		p0 = p1
	}
	return p, nil
}

func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t') {
		i++
	}
	return i
}

func toUpper(cmd byte) byte {
	if 'a' <= cmd && cmd <= 'z' {
		return cmd - 0x20
	}
	return cmd
}
