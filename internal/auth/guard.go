package auth

// RouteMode — заявленная видимость экрана.
type RouteMode int

const (
	// RouteOpen — экран доступен всем.
	RouteOpen RouteMode = iota
	// RouteProtected — экран доступен только вошедшим пользователям.
	RouteProtected
	// RoutePublicOnly — экран доступен только гостям (вход, регистрация).
	RoutePublicOnly
)

// Decision — результат проверки доступа к экрану.
type Decision int

const (
	// ShowView — показать запрошенный экран без изменений.
	ShowView Decision = iota
	// RedirectLogin — перенаправить на экран входа.
	RedirectLogin
	// RedirectProfile — перенаправить на экран профиля.
	RedirectProfile
)

// Decide — чистая функция принятия решения о доступе: никаких побочных
// эффектов, только сигнал навигации.
//
//	public-only + сессия  -> профиль
//	protected  + гость    -> вход
//	все остальное         -> запрошенный экран
func Decide(mode RouteMode, loggedIn bool) Decision {
	switch {
	case mode == RoutePublicOnly && loggedIn:
		return RedirectProfile
	case mode == RouteProtected && !loggedIn:
		return RedirectLogin
	default:
		return ShowView
	}
}
