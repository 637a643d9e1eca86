// This file is part of go-video-preview.
//
// go-video-preview is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-video-preview is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-video-preview.  If not, see <https://www.gnu.org/licenses/>.

package glpreview

// recording implementations of the surface and renderer interfaces. the
// frame path can be exercised without a window or a GPU.

type mockSurface struct {
	width  int
	height int
	maxTex int

	currentCount int
	releaseCount int
	swapCount    int
	swapErr      error
	current      bool

	// number of close requests waiting in the event queue
	closeRequests int

	title     string
	destroyed bool
}

func newMockSurface() *mockSurface {
	return &mockSurface{
		width:  800,
		height: 480,
		maxTex: 4096,
	}
}

func (srf *mockSurface) makeCurrent() error {
	srf.currentCount++
	srf.current = true
	return nil
}

func (srf *mockSurface) releaseCurrent() {
	srf.releaseCount++
	srf.current = false
}

func (srf *mockSurface) swap() error {
	if srf.swapErr != nil {
		return srf.swapErr
	}
	srf.swapCount++
	return nil
}

func (srf *mockSurface) pollQuit() bool {
	if srf.closeRequests > 0 {
		srf.closeRequests = 0
		return true
	}
	return false
}

func (srf *mockSurface) setTitle(text string) {
	srf.title = text
}

func (srf *mockSurface) size() (int, int) {
	return srf.width, srf.height
}

func (srf *mockSurface) maxTextureSize() int {
	return srf.maxTex
}

func (srf *mockSurface) destroy() error {
	srf.destroyed = true
	return nil
}

type mockRenderer struct {
	nextID uint32

	// draw ops in the order they happened ("clear", "frame", "overlay")
	ops []string

	// failure injection. linkFailAt fails only the numbered link attempt
	// (counting from one); linkFail fails them all
	compileFailStage string
	compileDiag      string
	linkFail         bool
	linkFailAt       int
	linkDiag         string
	importErr        error

	imports         []frameImage
	links           int
	linkAttempts    int
	liveShaders     map[uint32]bool
	deletedTextures []uint32
	deletedPrograms []uint32

	overlayTextures []uint32
	overlayUpdates  []overlayUpdate
}

type overlayUpdate struct {
	id     uint32
	width  int
	height int
}

func newMockRenderer() *mockRenderer {
	return &mockRenderer{
		liveShaders: make(map[uint32]bool),
	}
}

func (rnd *mockRenderer) id() uint32 {
	rnd.nextID++
	return rnd.nextID
}

func (rnd *mockRenderer) compileShader(stage string, _ string) (uint32, string, bool) {
	if stage == rnd.compileFailStage {
		return 0, rnd.compileDiag, false
	}
	id := rnd.id()
	rnd.liveShaders[id] = true
	return id, "", true
}

func (rnd *mockRenderer) linkProgram(_ uint32, _ uint32) (uint32, string, bool) {
	rnd.linkAttempts++
	if rnd.linkFail || rnd.linkAttempts == rnd.linkFailAt {
		return 0, rnd.linkDiag, false
	}
	rnd.links++
	return rnd.id(), "", true
}

func (rnd *mockRenderer) deleteShader(id uint32) {
	delete(rnd.liveShaders, id)
}

func (rnd *mockRenderer) deleteProgram(id uint32) {
	rnd.deletedPrograms = append(rnd.deletedPrograms, id)
}

func (rnd *mockRenderer) importFrame(img frameImage) (uint32, error) {
	if rnd.importErr != nil {
		return 0, rnd.importErr
	}
	rnd.imports = append(rnd.imports, img)
	return rnd.id(), nil
}

func (rnd *mockRenderer) deleteTexture(id uint32) {
	rnd.deletedTextures = append(rnd.deletedTextures, id)
}

func (rnd *mockRenderer) createOverlayTexture(_ int, _ int) uint32 {
	id := rnd.id()
	rnd.overlayTextures = append(rnd.overlayTextures, id)
	return id
}

func (rnd *mockRenderer) updateOverlayTexture(id uint32, _ []byte, width int, height int) {
	rnd.overlayUpdates = append(rnd.overlayUpdates, overlayUpdate{id: id, width: width, height: height})
}

func (rnd *mockRenderer) clear() {
	rnd.ops = append(rnd.ops, "clear")
}

func (rnd *mockRenderer) drawFrame(_ uint32, _ uint32, _ [8]float32) {
	rnd.ops = append(rnd.ops, "frame")
}

func (rnd *mockRenderer) drawOverlay(_ uint32, _ uint32) {
	rnd.ops = append(rnd.ops, "overlay")
}

// draws returns the number of "frame" and "overlay" draw ops since the last
// call.
func (rnd *mockRenderer) draws() (int, int) {
	frames := 0
	overlays := 0
	for _, op := range rnd.ops {
		switch op {
		case "frame":
			frames++
		case "overlay":
			overlays++
		}
	}
	rnd.ops = rnd.ops[:0]
	return frames, overlays
}
