// meta/meta.go
package meta

// TRAINING_IT defines the number of self-play games used for training.
const TRAINING_IT = 500000

// TRAINING_EPSILON defines the exploration rate while training.
const TRAINING_EPSILON = 0.4

// ALPHA defines the learning rate.
const ALPHA = 0.3

// GAMMA defines the discount factor.
const GAMMA = 0.9

// DEFAULT_Q defines the value of unseen (state, action) pairs.
const DEFAULT_Q = 1.0

// LOG_EVERY defines how many games pass between progress logs.
const LOG_EVERY = 50000

// EVAL_GAMES defines the number of games against the random baseline.
const EVAL_GAMES = 1000

// ROLLING_WINDOW defines the number of games averaged per chart point.
const ROLLING_WINDOW = 1000
