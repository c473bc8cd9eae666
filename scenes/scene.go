package scenes

// SceneChanger switches the running scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}
