// Package obstacles implements ObstacleHelper: the mask-fitting sweep that
// covers a zone's NeedPlaceObstacles region with catalog decoration
// objects without double-blocking any tile or blocking a tile outside the
// region. Tiles that no catalog obstacle fits are returned uncovered.
package obstacles
