package ppu

// scanOAM selects up to 10 sprites overlapping the current scanline,
// OAM-entry order, into scanlineSprites.
func (p *PPU) scanOAM() {
	p.scanlineSprites = p.scanlineSprites[:0]
	height := uint8(8)
	if p.tallSprites() {
		height = 16
	}

	for i := 0; i < 40 && len(p.scanlineSprites) < 10; i++ {
		base := i * 4
		y := p.oam[base]
		x := p.oam[base+1]
		tile := p.oam[base+2]
		attrs := p.oam[base+3]

		top := int(y) - 16
		if int(p.ly) >= top && int(p.ly) < top+int(height) {
			p.scanlineSprites = append(p.scanlineSprites, sprite{
				y: y, x: x, tile: tile, attrs: attrs, oamIdx: uint8(i),
			})
		}
	}
}

// renderScanline produces the 160 pixels of the current LY into the back
// buffer, compositing background, window, and sprites.
func (p *PPU) renderScanline() {
	if p.ly >= ScreenHeight {
		return
	}

	row := &p.back[p.ly]
	drewWindow := false

	for x := uint8(0); x < ScreenWidth; x++ {
		bgColor := uint8(0)
		if p.bgEnabled() {
			bgColor = p.backgroundPixel(x)
		}

		useWindow := p.windowEnabled() && p.ly >= p.wy && int(x)+7 >= int(p.wx)
		color := bgColor
		if useWindow {
			drewWindow = true
			color = p.windowPixel(x)
		}

		shade := p.shade(p.bgp, color)

		if p.spritesEnabled() {
			if sc, pal, behind, ok := p.spritePixel(x); ok {
				if !behind || color == 0 {
					shade = p.shade(pal, sc)
				}
			}
		}

		row[x] = shade
	}

	if drewWindow {
		p.windowLine++
		p.windowActive = true
	}
}

// backgroundPixel returns the 2-bit color index of the background layer
// at screen column x on the current scanline.
func (p *PPU) backgroundPixel(x uint8) uint8 {
	scrolledY := uint16(p.ly) + uint16(p.scy)
	scrolledX := uint16(x) + uint16(p.scx)

	tileMapBase := uint16(0x9800)
	if p.lcdc&(1<<3) != 0 {
		tileMapBase = 0x9C00
	}

	tileRow := (scrolledY % 256) / 8
	tileCol := (scrolledX % 256) / 8
	mapAddr := tileMapBase + tileRow*32 + tileCol

	tileIndex := p.vramAt(mapAddr)
	tileAddr := p.tileDataAddr(tileIndex)

	lineInTile := uint16(scrolledY % 8)
	b0 := p.vramAt(tileAddr + lineInTile*2)
	b1 := p.vramAt(tileAddr + lineInTile*2 + 1)

	n := 7 - (scrolledX % 8)
	return colorIndex(b0, b1, uint8(n))
}

// windowPixel returns the 2-bit color index of the window layer at
// screen column x, using the internal window line counter.
func (p *PPU) windowPixel(x uint8) uint8 {
	tileMapBase := uint16(0x9800)
	if p.lcdc&(1<<6) != 0 {
		tileMapBase = 0x9C00
	}

	winX := int(x) + 7 - int(p.wx)
	if winX < 0 {
		winX = 0
	}

	tileRow := uint16(p.windowLine) / 8
	tileCol := uint16(winX) / 8
	mapAddr := tileMapBase + tileRow*32 + tileCol

	tileIndex := p.vramAt(mapAddr)
	tileAddr := p.tileDataAddr(tileIndex)

	lineInTile := uint16(p.windowLine) % 8
	b0 := p.vramAt(tileAddr + lineInTile*2)
	b1 := p.vramAt(tileAddr + lineInTile*2 + 1)

	n := 7 - uint8(winX%8)
	return colorIndex(b0, b1, n)
}

// spritePixel resolves the winning sprite (smallest X, ties by lower OAM
// index) covering screen column x, returning its color index, palette
// register, below-background priority, and whether any opaque sprite
// pixel covers x at all.
func (p *PPU) spritePixel(x uint8) (color uint8, palette uint8, behind bool, ok bool) {
	height := uint8(8)
	if p.tallSprites() {
		height = 16
	}

	bestX := uint8(0xFF)
	var bestColor, bestPalette uint8
	var bestBehind bool
	found := false

	for _, s := range p.scanlineSprites {
		left := int(s.x) - 8
		if int(x) < left || int(x) >= left+8 {
			continue
		}

		// smaller X wins; ties go to the earlier OAM entry, already
		// guaranteed by scanOAM's ascending append order
		if found && s.x >= bestX {
			continue
		}

		col := int(x) - left
		if s.attrs&(1<<5) != 0 { // X flip
			col = 7 - col
		}
		row := int(p.ly) - (int(s.y) - 16)
		if s.attrs&(1<<6) != 0 { // Y flip
			row = int(height) - 1 - row
		}

		tile := s.tile
		if p.tallSprites() {
			tile &^= 1
			if row >= 8 {
				tile |= 1
				row -= 8
			}
		}

		tileAddr := uint16(0x8000) + uint16(tile)*16
		b0 := p.vramAt(tileAddr + uint16(row)*2)
		b1 := p.vramAt(tileAddr + uint16(row)*2 + 1)
		c := colorIndex(b0, b1, uint8(7-col))
		if c == 0 {
			continue // transparent
		}

		if !found || s.x < bestX {
			found = true
			bestX = s.x
			bestColor = c
			bestBehind = s.attrs&(1<<7) != 0
			bestPalette = p.obp0
			if s.attrs&(1<<4) != 0 {
				bestPalette = p.obp1
			}
		}
	}

	return bestColor, bestPalette, bestBehind, found
}

// tileDataAddr resolves a background/window tile index to its VRAM
// address, honoring LCDC bit 4's addressing mode.
func (p *PPU) tileDataAddr(index uint8) uint16 {
	if p.lcdc&(1<<4) != 0 {
		return 0x8000 + uint16(index)*16
	}
	return uint16(0x9000 + int32(int8(index))*16)
}

// vramAt reads VRAM by absolute bus address (0x8000-0x9FFF), bypassing
// the CPU-access-blocking Read used for bus dispatch, since the PPU's
// own renderer must be able to read tile data during Mode 3.
func (p *PPU) vramAt(address uint16) uint8 {
	return p.vram[address-0x8000]
}

// colorIndex extracts bit n (0..7, 7 = leftmost) of byte0 and byte1 as a
// 2-bit color index, byte1 contributing the high bit.
func colorIndex(b0, b1, n uint8) uint8 {
	lo := (b0 >> n) & 1
	hi := (b1 >> n) & 1
	return hi<<1 | lo
}

// shade maps a 2-bit color index through a BGP/OBPx-style palette
// register to a 2-bit shade.
func (p *PPU) shade(palette uint8, color uint8) uint8 {
	return (palette >> (color * 2)) & 0x03
}
