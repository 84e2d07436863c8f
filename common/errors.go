package common

import "errors"

// Ошибки, по которым вызывающий код принимает решения.
// Ошибки хранилища и транспорта оборачиваются через fmt.Errorf и
// фатальны только для одной операции, не для процесса.
var (
	// ErrEmptyCatalog каталог пуст даже после генерации офферов.
	// Фатальна для одного цикла публикации
	ErrEmptyCatalog = errors.New("каталог офферов пуст")

	// ErrDuplicateReferral награда за эту пару (код, приглашенный) уже начислена.
	// Не ошибка операции: онбординг продолжается без повторного начисления
	ErrDuplicateReferral = errors.New("реферальная награда уже начислена")

	// ErrReferrerNotFound код пригласившего не разрешился в существующего
	// пользователя при начислении награды
	ErrReferrerNotFound = errors.New("пользователь с таким реферальным кодом не найден")
)
