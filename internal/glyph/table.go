package glyph

var table = map[rune]Glyph{
	'0': parse('0', [Height]string{
		"#####",
		"#...#",
		"#...#",
		"#...#",
		"#####",
	}),
	'1': parse('1', [Height]string{
		"..#..",
		".##..",
		"..#..",
		"..#..",
		"#####",
	}),
	'2': parse('2', [Height]string{
		"#####",
		"....#",
		"#####",
		"#....",
		"#####",
	}),
	'3': parse('3', [Height]string{
		"#####",
		"....#",
		"#####",
		"....#",
		"#####",
	}),
	'4': parse('4', [Height]string{
		"#...#",
		"#...#",
		"#####",
		"....#",
		"....#",
	}),
	'5': parse('5', [Height]string{
		"#####",
		"#....",
		"#####",
		"....#",
		"#####",
	}),
	'6': parse('6', [Height]string{
		"#####",
		"#....",
		"#####",
		"#...#",
		"#####",
	}),
	'7': parse('7', [Height]string{
		"#####",
		"....#",
		"...#.",
		"..#..",
		"..#..",
	}),
	'8': parse('8', [Height]string{
		"#####",
		"#...#",
		"#####",
		"#...#",
		"#####",
	}),
	'9': parse('9', [Height]string{
		"#####",
		"#...#",
		"#####",
		"....#",
		"#####",
	}),
	':': parse(':', [Height]string{
		".",
		"#",
		".",
		"#",
		".",
	}),
}
