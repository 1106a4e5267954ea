package repositories

// Page параметры постраничной выборки. Семантика границ единая для всех
// реализаций хранилища: отрицательный Offset равнозначен нулевому,
// нулевой Limit дает пустую страницу.
type Page struct {
	Offset int
	Limit  int
}
