package app

type errCtx struct {
	Code  int
	Title string
	Msg   string
}

func get400(msg string) errCtx {
	return errCtx{
		Code:  400,
		Title: "Bad request",
		Msg:   msg,
	}
}

func get404() errCtx {
	return errCtx{
		Code:  404,
		Title: "Not found",
		Msg:   "Sorry, we couldn't find the record you were looking for.",
	}
}

func get405() errCtx {
	return errCtx{
		Code:  405,
		Title: "Method not allowed",
		Msg:   "Sorry, that method is not supported here.",
	}
}

func get500() errCtx {
	return errCtx{
		Code:  500,
		Title: "Internal server error",
		Msg:   "Sorry, there was an internal server error.",
	}
}
